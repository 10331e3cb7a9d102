package members

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/hurricanehousing/hhh-backend/internal/houses"
	"github.com/hurricanehousing/hhh-backend/pkg/db"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
	"github.com/hurricanehousing/hhh-backend/pkg/metrics"
	"github.com/hurricanehousing/hhh-backend/pkg/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type memberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindProfileByEmail(ctx context.Context, email string) (*ProfileRow, error)
	FindBySSNWithTx(tx *gorm.DB, ssn string) (*models.Member, error)
	CreateWithTx(tx *gorm.DB, member *models.Member) error
	SetDisplacedWithTx(tx *gorm.DB, ssn string, displaced bool) (int64, error)
	UpdateWithTx(tx *gorm.DB, ssn string, update ProfileUpdate) (int64, error)
	ClearHouseLinksWithTx(tx *gorm.DB, ssn string) (int64, error)
	DeleteWithTx(tx *gorm.DB, ssn string) (int64, error)
}

type houseRepository interface {
	CreateWithTx(tx *gorm.DB, house *models.House) error
	SetGuardianWithTx(tx *gorm.DB, houseID int64, ssn string) error
	SetDestroyedByGuardianWithTx(tx *gorm.DB, ssn string, destroyed bool) (int64, error)
	UpdateDetailsWithTx(tx *gorm.DB, houseID int64, details houses.DetailsUpdate) error
	DeleteGuardedWithTx(tx *gorm.DB, ssn string, houseID *int64) (int64, error)
}

// Service exposes member registration and profile operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*MemberDTO, error)
	ToggleDisplaced(ctx context.Context, ssn string, displaced bool) error
	Login(ctx context.Context, email, password string) (*MemberDTO, error)
	GetByEmail(ctx context.Context, email string) (*ProfileDTO, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, ssn string, houseID *int64) error
}

type service struct {
	tx      db.TxRunner
	members memberRepository
	houses  houseRepository
	metrics *metrics.HousingMetrics
}

// NewService builds a member service. m may be nil.
func NewService(tx db.TxRunner, membersRepo memberRepository, housesRepo houseRepository, m *metrics.HousingMetrics) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if membersRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if housesRepo == nil {
		return nil, fmt.Errorf("house repository required")
	}
	return &service{tx: tx, members: membersRepo, houses: housesRepo, metrics: m}, nil
}

// Register stores the house, then the member, then links the house back to
// its guardian, all in one transaction.
func (s *service) Register(ctx context.Context, input RegisterInput) (*MemberDTO, error) {
	dob, err := parseDOB(input.DOB)
	if err != nil {
		return nil, err
	}
	if err := checkCapacity(input.HouseTotalSpace, input.FamilySize); err != nil {
		return nil, err
	}

	member := &models.Member{
		SSN:               strings.TrimSpace(input.SSN),
		FirstName:         strings.TrimSpace(input.FirstName),
		LastName:          strings.TrimSpace(input.LastName),
		Email:             strings.TrimSpace(input.Email),
		Password:          input.Password,
		DOB:               dob,
		FamilySize:        input.FamilySize,
		IsHeadOfHousehold: input.IsHeadOfHousehold,
		Dependents:        input.Dependents,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		house := &models.House{
			Street:              strings.TrimSpace(input.Street),
			City:                strings.TrimSpace(input.City),
			State:               strings.TrimSpace(input.State),
			ZipCode:             strings.TrimSpace(input.ZipCode),
			HouseTotalSpace:     input.HouseTotalSpace,
			HouseSpaceAvailable: input.HouseTotalSpace - input.FamilySize,
		}
		if err := s.houses.CreateWithTx(tx, house); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to add house")
		}

		houseID := house.HouseID
		member.HouseID = &houseID
		if err := s.members.CreateWithTx(tx, member); err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "a member with this ssn or email already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to add member")
		}

		if err := s.houses.SetGuardianWithTx(tx, houseID, member.SSN); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update house")
		}
		return nil
	})
	if err != nil {
		return nil, asTyped(err, "failed to register member")
	}

	s.metrics.IncRegistered()
	return FromModel(member), nil
}

// ToggleDisplaced keeps the member's displaced flag and their house's destroyed
// flag in step.
func (s *service) ToggleDisplaced(ctx context.Context, ssn string, displaced bool) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.members.SetDisplacedWithTx(tx, ssn, displaced)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update displaced status")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		if _, err := s.houses.SetDestroyedByGuardianWithTx(tx, ssn, displaced); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update house status")
		}
		return nil
	})
	return asTyped(err, "failed to update displaced status")
}

func (s *service) Login(ctx context.Context, email, password string) (*MemberDTO, error) {
	member, err := s.members.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load member")
	}
	if subtle.ConstantTimeCompare([]byte(member.Password), []byte(password)) != 1 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	return FromModel(member), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*ProfileDTO, error) {
	row, err := s.members.FindProfileByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}
	return FromProfileRow(row), nil
}

// Update overwrites the member and their house. Available space is recomputed
// from total minus family size, so space already given to guests is released.
func (s *service) Update(ctx context.Context, input UpdateInput) error {
	dob, err := parseDOB(input.DOB)
	if err != nil {
		return err
	}
	if err := checkCapacity(input.HouseTotalSpace, input.FamilySize); err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		member, err := s.members.FindBySSNWithTx(tx, input.SSN)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load member")
		}

		if _, err := s.members.UpdateWithTx(tx, member.SSN, ProfileUpdate{
			FirstName:         strings.TrimSpace(input.FirstName),
			LastName:          strings.TrimSpace(input.LastName),
			Email:             strings.TrimSpace(input.Email),
			Password:          input.Password,
			DOB:               dob,
			FamilySize:        input.FamilySize,
			IsHeadOfHousehold: input.IsHeadOfHousehold,
			Dependents:        input.Dependents,
		}); err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already in use")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update member")
		}

		if member.HouseID == nil {
			return nil
		}
		if err := s.houses.UpdateDetailsWithTx(tx, *member.HouseID, houses.DetailsUpdate{
			Street:              strings.TrimSpace(input.Street),
			City:                strings.TrimSpace(input.City),
			State:               strings.TrimSpace(input.State),
			ZipCode:             strings.TrimSpace(input.ZipCode),
			HouseTotalSpace:     input.HouseTotalSpace,
			HouseSpaceAvailable: input.HouseTotalSpace - input.FamilySize,
		}); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to update house")
		}
		return nil
	})
	return asTyped(err, "failed to update member")
}

// Delete detaches the member, removes the house they guard and then the member.
// A supplied houseID must be the member's own house.
func (s *service) Delete(ctx context.Context, ssn string, houseID *int64) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		member, err := s.members.FindBySSNWithTx(tx, ssn)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load member")
		}
		if houseID != nil && (member.HouseID == nil || *member.HouseID != *houseID) {
			return pkgerrors.New(pkgerrors.CodeConflict, "house does not belong to member")
		}

		if _, err := s.members.ClearHouseLinksWithTx(tx, ssn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to detach member from house")
		}
		if member.HouseID != nil {
			rows, err := s.houses.DeleteGuardedWithTx(tx, ssn, member.HouseID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete house")
			}
			if rows != 1 {
				return pkgerrors.New(pkgerrors.CodeConflict, "member is not the guardian of their house")
			}
		}
		rows, err := s.members.DeleteWithTx(tx, ssn)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to delete member")
		}
		if rows != 1 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil
	})
	return asTyped(err, "failed to delete member")
}

func parseDOB(raw string) (datatypes.Date, error) {
	t, err := types.ParseDate(raw)
	if err != nil {
		return datatypes.Date{}, pkgerrors.New(pkgerrors.CodeValidation, "dob must be formatted as YYYY-MM-DD or M/D/YYYY")
	}
	return datatypes.Date(t), nil
}

func checkCapacity(total, familySize int) error {
	if total < familySize {
		return pkgerrors.New(pkgerrors.CodeValidation, "houseTotalSpace must be at least familySize").
			WithDetails(map[string]int{"houseTotalSpace": total, "familySize": familySize})
	}
	return nil
}

// asTyped passes typed errors through and wraps anything else (commit
// failures) as an internal error.
func asTyped(err error, message string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, message)
}
