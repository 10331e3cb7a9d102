package db

import (
	"strings"

	pkgerrors "github.com/hurricanehousing/hhh-backend/pkg/errors"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint failure from
// Postgres (pgx or lib/pq) or SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, _, _, _ := pkgerrors.PostgresFields(err); code != "" {
		return code == pgUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
