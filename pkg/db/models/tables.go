package models

const (
	TableMembers  = "HHH_Members"
	TableHouses   = "Houses"
	TablePairings = "shelter_pairings"
)

// All lists every model in dependency order, for AutoMigrate in dev and tests.
func All() []any {
	return []any{&House{}, &Member{}, &ShelterPairing{}}
}
