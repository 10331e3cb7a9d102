package houses

import (
	"context"
	"fmt"

	"github.com/hurricanehousing/hhh-backend/internal/repo"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles house persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to house operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindByID loads a house by its id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.House, error) {
	var house models.House
	if err := r.DB(ctx).Where("house_id = ?", id).First(&house).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

// ListAvailable returns every house that is not destroyed, ordered by id.
func (r *Repository) ListAvailable(ctx context.Context) ([]models.House, error) {
	var houses []models.House
	if err := r.DB(ctx).
		Where("is_destroyed = ?", false).
		Order("house_id").
		Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// CreateWithTx inserts the house and fills in its generated id.
func (r *Repository) CreateWithTx(tx *gorm.DB, house *models.House) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if house == nil {
		return fmt.Errorf("house is required")
	}
	return tx.Create(house).Error
}

// FindByIDWithTx loads a house using the provided transaction.
func (r *Repository) FindByIDWithTx(tx *gorm.DB, id int64) (*models.House, error) {
	if tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	var house models.House
	if err := tx.Where("house_id = ?", id).First(&house).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

// SetGuardianWithTx links a house to the member responsible for it.
func (r *Repository) SetGuardianWithTx(tx *gorm.DB, houseID int64, ssn string) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.House{}).
		Where("house_id = ?", houseID).
		Update("guardian_ssn", ssn)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetDestroyedByGuardianWithTx marks every house guarded by ssn as destroyed (or not).
func (r *Repository) SetDestroyedByGuardianWithTx(tx *gorm.DB, ssn string, destroyed bool) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.House{}).
		Where("guardian_ssn = ?", ssn).
		Update("is_destroyed", destroyed)
	return res.RowsAffected, res.Error
}

// DetailsUpdate carries the overwritable address and capacity columns.
type DetailsUpdate struct {
	Street              string
	City                string
	State               string
	ZipCode             string
	HouseTotalSpace     int
	HouseSpaceAvailable int
}

// UpdateDetailsWithTx overwrites the address and capacity of a house.
func (r *Repository) UpdateDetailsWithTx(tx *gorm.DB, houseID int64, details DetailsUpdate) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.House{}).
		Where("house_id = ?", houseID).
		Updates(map[string]any{
			"street":                details.Street,
			"city":                  details.City,
			"state":                 details.State,
			"zip_code":              details.ZipCode,
			"house_total_space":     details.HouseTotalSpace,
			"house_space_available": details.HouseSpaceAvailable,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReserveSpaceWithTx takes familySize places from a standing house. It reports
// false, without touching the row, when the house lacks the space or is destroyed.
func (r *Repository) ReserveSpaceWithTx(tx *gorm.DB, houseID int64, familySize int) (bool, error) {
	if tx == nil {
		return false, gorm.ErrInvalidTransaction
	}
	res := tx.Model(&models.House{}).
		Where("house_id = ? AND house_space_available >= ? AND is_destroyed = ?", houseID, familySize, false).
		Update("house_space_available", gorm.Expr("house_space_available - ?", familySize))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteGuardedWithTx removes the house guarded by ssn. When houseID is set the
// delete is further restricted to that house.
func (r *Repository) DeleteGuardedWithTx(tx *gorm.DB, ssn string, houseID *int64) (int64, error) {
	if tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}
	q := tx.Where("guardian_ssn = ?", ssn)
	if houseID != nil {
		q = q.Where("house_id = ?", *houseID)
	}
	res := q.Delete(&models.House{})
	return res.RowsAffected, res.Error
}
