package enums

import (
	"fmt"
	"strings"
)

// ShelterStatus is the derived housing situation of a member.
type ShelterStatus string

const (
	ShelterStatusSafe           ShelterStatus = "Safe in original house"
	ShelterStatusRefugee        ShelterStatus = "Refugee in another house"
	ShelterStatusWithoutShelter ShelterStatus = "without shelter"
)

var validShelterStatuses = []ShelterStatus{
	ShelterStatusSafe,
	ShelterStatusRefugee,
	ShelterStatusWithoutShelter,
}

// AllShelterStatuses returns every known status in report order.
func AllShelterStatuses() []ShelterStatus {
	out := make([]ShelterStatus, len(validShelterStatuses))
	copy(out, validShelterStatuses)
	return out
}

// String implements fmt.Stringer.
func (s ShelterStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known ShelterStatus.
func (s ShelterStatus) IsValid() bool {
	for _, candidate := range validShelterStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShelterStatus matches case-insensitively so "safe in original house" is accepted.
func ParseShelterStatus(value string) (ShelterStatus, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validShelterStatuses {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shelter status %q", value)
}

// ParseShelterStatusList parses a comma separated filter. Empty entries are
// skipped; an empty result means no filter.
func ParseShelterStatusList(raw string) ([]ShelterStatus, error) {
	var out []ShelterStatus
	seen := map[ShelterStatus]bool{}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		status, err := ParseShelterStatus(part)
		if err != nil {
			return nil, err
		}
		if !seen[status] {
			seen[status] = true
			out = append(out, status)
		}
	}
	return out, nil
}
