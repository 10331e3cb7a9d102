package models

import (
	"github.com/hurricanehousing/hhh-backend/pkg/types"
	"gorm.io/datatypes"
)

// Member is a registered program participant. Password is stored as submitted.
type Member struct {
	SSN               string           `gorm:"column:ssn;type:varchar(11);primaryKey"`
	FirstName         string           `gorm:"column:first_name;not null"`
	LastName          string           `gorm:"column:last_name;not null"`
	Email             string           `gorm:"column:email;not null;uniqueIndex"`
	Password          string           `gorm:"column:password;not null"`
	DOB               datatypes.Date   `gorm:"column:dob;not null"`
	FamilySize        int              `gorm:"column:family_size;not null;default:0"`
	HouseID           *int64           `gorm:"column:house_id;index"`
	IsHeadOfHousehold bool             `gorm:"column:is_head_of_household;not null;default:false"`
	Dependents        types.Dependents `gorm:"column:dependents;type:text;not null"`
	IsDisplaced       bool             `gorm:"column:is_displaced;not null;default:false"`
	RefugeAt          *int64           `gorm:"column:refuge_at;index"`
}

func (Member) TableName() string {
	return TableMembers
}
