package pairings

import (
	"context"
	"errors"
	"fmt"

	"github.com/hurricanehousing/hhh-backend/pkg/db"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/enums"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/metrics"
	"gorm.io/gorm"
)

type pairingRepository interface {
	CreateWithTx(tx *gorm.DB, pairing *models.ShelterPairing) error
	Report(ctx context.Context, filter ReportFilter) ([]ReportRow, error)
}

type houseRepository interface {
	FindByIDWithTx(tx *gorm.DB, id int64) (*models.House, error)
	ReserveSpaceWithTx(tx *gorm.DB, houseID int64, familySize int) (bool, error)
}

type memberRepository interface {
	SetRefugeWithTx(tx *gorm.DB, ssn string, houseID int64) (int64, error)
}

// Service pairs displaced families with host houses.
type Service interface {
	SelectHouse(ctx context.Context, input SelectHouseInput) (*PairingDTO, error)
	Report(ctx context.Context, search, status string) ([]ReportRowDTO, error)
}

type service struct {
	tx       db.TxRunner
	pairings pairingRepository
	houses   houseRepository
	members  memberRepository
	metrics  *metrics.HousingMetrics
}

// NewService builds a pairing service. m may be nil.
func NewService(tx db.TxRunner, pairingsRepo pairingRepository, housesRepo houseRepository, membersRepo memberRepository, m *metrics.HousingMetrics) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if pairingsRepo == nil {
		return nil, fmt.Errorf("pairing repository required")
	}
	if housesRepo == nil {
		return nil, fmt.Errorf("house repository required")
	}
	if membersRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	return &service{tx: tx, pairings: pairingsRepo, houses: housesRepo, members: membersRepo, metrics: m}, nil
}

// SelectHouse moves the member into the house, takes familySize places from it
// and logs the pairing. The space is only taken when enough remains; otherwise
// the whole selection is rolled back with a capacity error.
func (s *service) SelectHouse(ctx context.Context, input SelectHouseInput) (*PairingDTO, error) {
	if input.FamilySize <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "familySize must be greater than zero")
	}

	var (
		pairing   *models.ShelterPairing
		available int
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		house, err := s.houses.FindByIDWithTx(tx, input.HouseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "house not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load house")
		}
		if house.GuardianSSN == nil || *house.GuardianSSN == "" {
			return pkgerrors.New(pkgerrors.CodeNotFound, "house has no guardian")
		}
		if house.IsDestroyed {
			return pkgerrors.New(pkgerrors.CodeConflict, "house is destroyed")
		}

		rows, err := s.members.SetRefugeWithTx(tx, input.SSN, input.HouseID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update member")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}

		ok, err := s.houses.ReserveSpaceWithTx(tx, input.HouseID, input.FamilySize)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update house space")
		}
		if !ok {
			return pkgerrors.New(pkgerrors.CodeCapacity, "not enough space available in this house").
				WithDetails(map[string]any{
					"houseId":             input.HouseID,
					"requested":           input.FamilySize,
					"houseSpaceAvailable": house.HouseSpaceAvailable,
				})
		}
		// re-read under the row lock taken by the reservation
		reserved, err := s.houses.FindByIDWithTx(tx, input.HouseID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reload house")
		}
		available = reserved.HouseSpaceAvailable

		pairing = &models.ShelterPairing{
			Host:           *house.GuardianSSN,
			LeadRefugeeSSN: input.SSN,
			ShelterID:      input.HouseID,
		}
		if err := s.pairings.CreateWithTx(tx, pairing); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to record shelter pairing")
		}
		return nil
	})
	if err != nil {
		s.recordRejection(err)
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to select house")
	}

	s.metrics.IncPairing()
	return FromModel(pairing, available), nil
}

func (s *service) recordRejection(err error) {
	switch pkgerrors.CodeOf(err) {
	case pkgerrors.CodeCapacity:
		s.metrics.IncSelectionRejected(metrics.RejectCapacity)
	case pkgerrors.CodeNotFound:
		s.metrics.IncSelectionRejected(metrics.RejectNotFound)
	}
}

// Report lists members with their derived shelter status. status is a comma
// separated subset of the known statuses; empty means all.
func (s *service) Report(ctx context.Context, search, status string) ([]ReportRowDTO, error) {
	statuses, err := enums.ParseShelterStatusList(status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter").
			WithDetails(map[string]any{"allowed": enums.AllShelterStatuses()})
	}

	rows, err := s.pairings.Report(ctx, ReportFilter{Search: search, Statuses: statuses})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load shelter pairings")
	}
	out := make([]ReportRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromReportRow(row))
	}
	return out, nil
}
