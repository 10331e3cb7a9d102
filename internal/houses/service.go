package houses

import (
	"context"
	"errors"
	"fmt"

	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/enums"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"gorm.io/gorm"
)

type houseRepository interface {
	FindByID(ctx context.Context, id int64) (*models.House, error)
	ListAvailable(ctx context.Context) ([]models.House, error)
}

// Service exposes the read side of the housing inventory.
type Service interface {
	ListAvailable(ctx context.Context) ([]AvailableHouseDTO, error)
	ResolveCurrentAddress(ctx context.Context, houseID, refugeAt *int64) (*CurrentAddressDTO, error)
}

type service struct {
	repo houseRepository
}

// NewService builds a house service with the provided repository.
func NewService(repo houseRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("house repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]AvailableHouseDTO, error) {
	rows, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list available houses")
	}
	out := make([]AvailableHouseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out, nil
}

// ResolveCurrentAddress prefers the member's own standing house, then a standing
// refuge, and otherwise reports the member as without shelter.
func (s *service) ResolveCurrentAddress(ctx context.Context, houseID, refugeAt *int64) (*CurrentAddressDTO, error) {
	house, err := s.standingHouse(ctx, houseID)
	if err != nil {
		return nil, err
	}
	if house != nil {
		return resolved(enums.ShelterKindOriginal, house), nil
	}

	refuge, err := s.standingHouse(ctx, refugeAt)
	if err != nil {
		return nil, err
	}
	if refuge != nil {
		return resolved(enums.ShelterKindRefuge, refuge), nil
	}
	return resolved(enums.ShelterKindNone, nil), nil
}

func (s *service) standingHouse(ctx context.Context, id *int64) (*models.House, error) {
	if id == nil {
		return nil, nil
	}
	house, err := s.repo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load house")
	}
	if house.IsDestroyed {
		return nil, nil
	}
	return house, nil
}
