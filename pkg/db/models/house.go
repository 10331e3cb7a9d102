package models

import "strings"

// House is a dwelling with a total and remaining guest capacity.
type House struct {
	HouseID             int64   `gorm:"column:house_id;primaryKey;autoIncrement"`
	Street              string  `gorm:"column:street;not null"`
	City                string  `gorm:"column:city;not null"`
	State               string  `gorm:"column:state;not null"`
	ZipCode             string  `gorm:"column:zip_code;not null"`
	HouseTotalSpace     int     `gorm:"column:house_total_space;not null"`
	HouseSpaceAvailable int     `gorm:"column:house_space_available;not null"`
	GuardianSSN         *string `gorm:"column:guardian_ssn;index"`
	IsDestroyed         bool    `gorm:"column:is_destroyed;not null;default:false"`
}

func (House) TableName() string {
	return TableHouses
}

// FormattedAddress renders "street, city, state zip".
func (h House) FormattedAddress() string {
	return FormatAddress(h.Street, h.City, h.State, h.ZipCode)
}

// FormatAddress must stay in sync with AddressSQL.
func FormatAddress(street, city, state, zip string) string {
	var b strings.Builder
	b.WriteString(street)
	b.WriteString(", ")
	b.WriteString(city)
	b.WriteString(", ")
	b.WriteString(state)
	b.WriteString(" ")
	b.WriteString(zip)
	return b.String()
}

// AddressSQL builds the SQL expression equivalent of FormatAddress for the
// given table alias. The || operator is shared by Postgres and SQLite.
func AddressSQL(alias string) string {
	return alias + ".street || ', ' || " + alias + ".city || ', ' || " + alias + ".state || ' ' || " + alias + ".zip_code"
}
