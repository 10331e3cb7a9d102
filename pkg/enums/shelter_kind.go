package enums

// ShelterKind classifies a current-address resolution.
type ShelterKind string

const (
	ShelterKindOriginal ShelterKind = "original_house"
	ShelterKindRefuge   ShelterKind = "refuge"
	ShelterKindNone     ShelterKind = "without_shelter"
)

// Status maps the resolution kind onto the report status label.
func (k ShelterKind) Status() ShelterStatus {
	switch k {
	case ShelterKindOriginal:
		return ShelterStatusSafe
	case ShelterKindRefuge:
		return ShelterStatusRefugee
	default:
		return ShelterStatusWithoutShelter
	}
}
