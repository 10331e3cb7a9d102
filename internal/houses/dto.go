package houses

import (
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/enums"
)

// AvailableHouseDTO is one row of the available-houses listing.
type AvailableHouseDTO struct {
	HouseID             int64  `json:"house_id"`
	Street              string `json:"street"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zip_code"`
	Address             string `json:"address"`
	HouseSpaceAvailable int    `json:"house_space_available"`
}

// FromModel maps a persisted house into the listing row.
func FromModel(m *models.House) AvailableHouseDTO {
	return AvailableHouseDTO{
		HouseID:             m.HouseID,
		Street:              m.Street,
		City:                m.City,
		State:               m.State,
		ZipCode:             m.ZipCode,
		Address:             m.FormattedAddress(),
		HouseSpaceAvailable: m.HouseSpaceAvailable,
	}
}

// CurrentAddressDTO is the outcome of resolving where a member is sheltered.
type CurrentAddressDTO struct {
	Kind    enums.ShelterKind   `json:"kind"`
	Status  enums.ShelterStatus `json:"status"`
	HouseID *int64              `json:"house_id,omitempty"`
	Address string              `json:"address,omitempty"`
	Message string              `json:"message"`
}

func resolved(kind enums.ShelterKind, house *models.House) *CurrentAddressDTO {
	dto := &CurrentAddressDTO{Kind: kind, Status: kind.Status()}
	switch kind {
	case enums.ShelterKindOriginal:
		dto.Address = house.FormattedAddress()
		dto.Message = "Safe at original house: " + dto.Address
	case enums.ShelterKindRefuge:
		dto.Address = house.FormattedAddress()
		dto.Message = "Refuge at: " + dto.Address
	default:
		dto.Message = "Without shelter"
	}
	if house != nil {
		id := house.HouseID
		dto.HouseID = &id
	}
	return dto
}
