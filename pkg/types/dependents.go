package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Dependent is a household member registered under a head of household.
type Dependent struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	DOB       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	SSN       string `json:"ssn" validate:"omitempty,max=11"`
}

// Dependents is stored as JSON text in the dependents column. Reads never
// fail: anything that is not a JSON array of dependents becomes an empty list.
type Dependents []Dependent

// Value always writes a JSON array, "[]" for nil.
func (d Dependents) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]Dependent(d))
	if err != nil {
		return nil, fmt.Errorf("dependents: marshal: %w", err)
	}
	return string(raw), nil
}

func (d *Dependents) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Dependents{}
	case string:
		*d = ParseDependents(v)
	case []byte:
		*d = ParseDependents(string(v))
	default:
		*d = Dependents{}
	}
	return nil
}

// ParseDependents decodes stored dependents, degrading to an empty list.
func ParseDependents(raw string) Dependents {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Dependents{}
	}
	var out []Dependent
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return Dependents{}
	}
	return Dependents(out)
}
