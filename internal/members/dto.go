package members

import (
	"time"

	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/types"
)

// displayDOBLayout renders dates the way the client shows them (M/D/YYYY).
const displayDOBLayout = "1/2/2006"

// RegisterInput captures a new member together with their home.
type RegisterInput struct {
	FirstName         string
	LastName          string
	Email             string
	Password          string
	SSN               string
	DOB               string
	FamilySize        int
	Street            string
	City              string
	State             string
	ZipCode           string
	HouseTotalSpace   int
	IsHeadOfHousehold bool
	Dependents        types.Dependents
}

// UpdateInput overwrites a member's profile and their house. A nil Password
// keeps the stored one.
type UpdateInput struct {
	SSN               string
	FirstName         string
	LastName          string
	Email             string
	Password          *string
	DOB               string
	FamilySize        int
	Street            string
	City              string
	State             string
	ZipCode           string
	HouseTotalSpace   int
	IsHeadOfHousehold bool
	Dependents        types.Dependents
}

// MemberDTO exposes a member without their password.
type MemberDTO struct {
	SSN               string           `json:"ssn"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	DOB               string           `json:"dob"`
	FamilySize        int              `json:"family_size"`
	HouseID           *int64           `json:"house_id"`
	IsHeadOfHousehold bool             `json:"is_head_of_household"`
	Dependents        types.Dependents `json:"dependents"`
	IsDisplaced       bool             `json:"is_displaced"`
	RefugeAt          *int64           `json:"refuge_at"`
}

// ProfileDTO is a member with their house, as returned by user-by-email.
type ProfileDTO struct {
	MemberDTO
	Street              *string `json:"street"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	ZipCode             *string `json:"zip_code"`
	CurrentAddress      *string `json:"current_address"`
	HouseTotalSpace     *int    `json:"house_total_space"`
	HouseSpaceAvailable *int    `json:"house_space_available"`
	IsDestroyed         *bool   `json:"is_destroyed"`
}

// FromModel maps the persisted member into a DTO.
func FromModel(m *models.Member) *MemberDTO {
	if m == nil {
		return nil
	}
	dependents := m.Dependents
	if dependents == nil {
		dependents = types.Dependents{}
	}
	return &MemberDTO{
		SSN:               m.SSN,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		DOB:               FormatDOB(time.Time(m.DOB)),
		FamilySize:        m.FamilySize,
		HouseID:           m.HouseID,
		IsHeadOfHousehold: m.IsHeadOfHousehold,
		Dependents:        dependents,
		IsDisplaced:       m.IsDisplaced,
		RefugeAt:          m.RefugeAt,
	}
}

// FromProfileRow maps the joined member and house row into a DTO.
func FromProfileRow(row *ProfileRow) *ProfileDTO {
	if row == nil {
		return nil
	}
	dto := &ProfileDTO{
		MemberDTO:           *FromModel(&row.Member),
		Street:              row.Street,
		City:                row.City,
		State:               row.State,
		ZipCode:             row.ZipCode,
		HouseTotalSpace:     row.HouseTotalSpace,
		HouseSpaceAvailable: row.HouseSpaceAvailable,
		IsDestroyed:         row.IsDestroyed,
	}
	if row.Street != nil && row.City != nil && row.State != nil && row.ZipCode != nil {
		addr := models.FormatAddress(*row.Street, *row.City, *row.State, *row.ZipCode)
		dto.CurrentAddress = &addr
	}
	return dto
}

// FormatDOB renders a date of birth as M/D/YYYY.
func FormatDOB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(displayDOBLayout)
}
