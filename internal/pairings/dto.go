package pairings

import (
	"time"

	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
)

// SelectHouseInput asks to shelter a family in a host's house.
type SelectHouseInput struct {
	SSN        string
	HouseID    int64
	FamilySize int
}

// PairingDTO is the recorded placement.
type PairingDTO struct {
	PairingID           int64     `json:"pairing_id"`
	Host                string    `json:"host"`
	LeadRefugeeSSN      string    `json:"leadRefugeeSSN"`
	ShelterID           int64     `json:"shelterID"`
	HouseSpaceAvailable int       `json:"house_space_available"`
	CreatedAt           time.Time `json:"created_at"`
}

// ReportRowDTO is one row of the shelter pairings report.
type ReportRowDTO struct {
	SSN            string `json:"ssn"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CurrentAddress string `json:"current_address"`
	Status         string `json:"status"`
}

// FromModel maps the logged pairing into a DTO.
func FromModel(m *models.ShelterPairing, available int) *PairingDTO {
	if m == nil {
		return nil
	}
	return &PairingDTO{
		PairingID:           m.PairingID,
		Host:                m.Host,
		LeadRefugeeSSN:      m.LeadRefugeeSSN,
		ShelterID:           m.ShelterID,
		HouseSpaceAvailable: available,
		CreatedAt:           m.CreatedAt,
	}
}

func fromReportRow(r ReportRow) ReportRowDTO {
	return ReportRowDTO(r)
}
