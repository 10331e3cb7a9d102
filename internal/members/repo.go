package members

import (
	"context"
	"fmt"

	"github.com/hurricanehousing/hhh-backend/internal/repo"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Repository handles member persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to member operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ProfileRow is a member joined with the columns of their own house. House
// columns are nil when the member has no house.
type ProfileRow struct {
	models.Member       `gorm:"embedded"`
	Street              *string
	City                *string
	State               *string
	ZipCode             *string
	HouseTotalSpace     *int
	HouseSpaceAvailable *int
	IsDestroyed         *bool
}

// FindByEmail loads a member by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	if err := r.DB(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindProfileByEmail loads a member and their house in one query.
func (r *Repository) FindProfileByEmail(ctx context.Context, email string) (*ProfileRow, error) {
	var row ProfileRow
	res := r.DB(ctx).
		Table(fmt.Sprintf("%q AS m", models.TableMembers)).
		Select("m.*, h.street, h.city, h.state, h.zip_code, h.house_total_space, h.house_space_available, h.is_destroyed").
		Joins(fmt.Sprintf("LEFT JOIN %q AS h ON h.house_id = m.house_id", models.TableHouses)).
		Where("m.email = ?", email).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// FindBySSNWithTx loads a member using the provided transaction.
func (r *Repository) FindBySSNWithTx(tx *gorm.DB, ssn string) (*models.Member, error) {
	if tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	var member models.Member
	if err := tx.Where("ssn = ?", ssn).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateWithTx inserts a member.
func (r *Repository) CreateWithTx(tx *gorm.DB, member *models.Member) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if member == nil {
		return fmt.Errorf("member is required")
	}
	return tx.Create(member).Error
}

// SetDisplacedWithTx records whether the member has lost their home.
func (r *Repository) SetDisplacedWithTx(tx *gorm.DB, ssn string, displaced bool) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.Member{}).Where("ssn = ?", ssn).Update("is_displaced", displaced)
	return res.RowsAffected, res.Error
}

// SetRefugeWithTx points the member at the house sheltering them and clears
// the displaced flag.
func (r *Repository) SetRefugeWithTx(tx *gorm.DB, ssn string, houseID int64) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.Member{}).
		Where("ssn = ?", ssn).
		Updates(map[string]any{"is_displaced": false, "refuge_at": houseID})
	return res.RowsAffected, res.Error
}

// ProfileUpdate carries the overwritable member columns. A nil Password keeps
// the stored one.
type ProfileUpdate struct {
	FirstName         string
	LastName          string
	Email             string
	Password          *string
	DOB               datatypes.Date
	FamilySize        int
	IsHeadOfHousehold bool
	Dependents        types.Dependents
}

// UpdateWithTx overwrites the member's profile columns.
func (r *Repository) UpdateWithTx(tx *gorm.DB, ssn string, update ProfileUpdate) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	values := map[string]any{
		"first_name":           update.FirstName,
		"last_name":            update.LastName,
		"email":                update.Email,
		"dob":                  update.DOB,
		"family_size":          update.FamilySize,
		"is_head_of_household": update.IsHeadOfHousehold,
		"dependents":           update.Dependents,
	}
	if update.Password != nil {
		values["password"] = *update.Password
	}
	res := tx.Model(&models.Member{}).Where("ssn = ?", ssn).Updates(values)
	return res.RowsAffected, res.Error
}

// ClearHouseLinksWithTx detaches the member from their own house and refuge.
func (r *Repository) ClearHouseLinksWithTx(tx *gorm.DB, ssn string) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.Member{}).
		Where("ssn = ?", ssn).
		Updates(map[string]any{"house_id": nil, "refuge_at": nil})
	return res.RowsAffected, res.Error
}

// DeleteWithTx removes the member row.
func (r *Repository) DeleteWithTx(tx *gorm.DB, ssn string) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	res := tx.Where("ssn = ?", ssn).Delete(&models.Member{})
	return res.RowsAffected, res.Error
}
