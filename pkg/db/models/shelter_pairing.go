package models

import "time"

// ShelterPairing logs a placement of a displaced member into a host's house.
type ShelterPairing struct {
	PairingID      int64     `gorm:"column:pairing_id;primaryKey;autoIncrement"`
	Host           string    `gorm:"column:host;not null;index"`
	LeadRefugeeSSN string    `gorm:"column:leadRefugeeSSN;not null;index"`
	ShelterID      int64     `gorm:"column:shelterID;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ShelterPairing) TableName() string {
	return TablePairings
}
