package pairings

import (
	"context"
	"fmt"
	"strings"

	"github.com/hurricanehousing/hhh-backend/internal/repo"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository handles the pairing log and the shelter report.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to pairing operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// CreateWithTx appends a pairing to the log.
func (r *Repository) CreateWithTx(tx *gorm.DB, pairing *models.ShelterPairing) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if pairing == nil {
		return fmt.Errorf("pairing is required")
	}
	return tx.Create(pairing).Error
}

// ReportRow is one member in the shelter report.
type ReportRow struct {
	SSN            string `gorm:"column:ssn"`
	FirstName      string `gorm:"column:first_name"`
	LastName       string `gorm:"column:last_name"`
	CurrentAddress string `gorm:"column:current_address"`
	Status         string `gorm:"column:status"`
}

// ReportFilter narrows the report. Empty Search and Statuses match everything.
type ReportFilter struct {
	Search   string
	Statuses []enums.ShelterStatus
}

// Report derives each member's current address and shelter status in SQL,
// preferring a standing own house, then a standing refuge.
func (r *Repository) Report(ctx context.Context, filter ReportFilter) ([]ReportRow, error) {
	own := models.AddressSQL("h")
	refuge := models.AddressSQL("rf")

	derived := fmt.Sprintf(`SELECT m.ssn, m.first_name, m.last_name,
  CASE
    WHEN h.house_id IS NOT NULL AND h.is_destroyed = ? THEN %s
    WHEN rf.house_id IS NOT NULL AND rf.is_destroyed = ? THEN %s
    ELSE ''
  END AS current_address,
  CASE
    WHEN h.house_id IS NOT NULL AND h.is_destroyed = ? THEN ?
    WHEN rf.house_id IS NOT NULL AND rf.is_destroyed = ? THEN ?
    ELSE ?
  END AS status
FROM %q AS m
LEFT JOIN %q AS h ON h.house_id = m.house_id
LEFT JOIN %q AS rf ON rf.house_id = m.refuge_at`,
		own, refuge, models.TableMembers, models.TableHouses, models.TableHouses)
	args := []any{
		false, false,
		false, string(enums.ShelterStatusSafe),
		false, string(enums.ShelterStatusRefugee),
		string(enums.ShelterStatusWithoutShelter),
	}

	var where []string
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		where = append(where, `(LOWER(derived.first_name) LIKE ? ESCAPE '\' OR LOWER(derived.last_name) LIKE ? ESCAPE '\' OR LOWER(derived.current_address) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		where = append(where, "derived.status IN ?")
		args = append(args, statuses)
	}

	query := "SELECT derived.ssn, derived.first_name, derived.last_name, derived.current_address, derived.status FROM (" + derived + ") AS derived"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY derived.last_name, derived.first_name, derived.ssn"

	var rows []ReportRow
	if err := r.DB(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
