package types

import (
	"errors"
	"strings"
	"time"
)

// DateLayouts are the accepted date-of-birth inputs: ISO dates from forms and
// the M/D/YYYY rendering returned by profile lookups.
var DateLayouts = []string{"2006-01-02", "1/2/2006"}

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD or M/D/YYYY")

// ParseDate parses raw with the first matching layout in DateLayouts.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
