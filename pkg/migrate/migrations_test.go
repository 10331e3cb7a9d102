package migrate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hurricanehousing/hhh-backend/pkg/config"
	"github.com/hurricanehousing/hhh-backend/pkg/db"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/hurricanehousing/hhh-backend/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func readEmbedded(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := fs.Glob(FS(), embeddedDir+"/"+pattern)
	require.NoError(t, err)
	require.Len(t, matches, 1, "expected exactly one migration matching %s", pattern)
	data, err := fs.ReadFile(FS(), matches[0])
	require.NoError(t, err)
	return string(data)
}

func TestHousingMigrationContainsConstraints(t *testing.T) {
	content := readEmbedded(t, "*_create_houses_and_members.sql")

	checks := []string{
		`CREATE TABLE IF NOT EXISTS "Houses"`,
		`CREATE TABLE IF NOT EXISTS "HHH_Members"`,
		"CHECK (house_space_available >= 0)",
		`FOREIGN KEY (house_id) REFERENCES "Houses"(house_id) ON DELETE SET NULL`,
		`FOREIGN KEY (refuge_at) REFERENCES "Houses"(house_id) ON DELETE SET NULL`,
		`FOREIGN KEY (guardian_ssn) REFERENCES "HHH_Members"(ssn) ON DELETE SET NULL`,
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_hhh_members_email",
		"dependents TEXT NOT NULL DEFAULT '[]'",
		`DROP TABLE IF EXISTS "HHH_Members"`,
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPairingsMigrationQuotesCamelCaseColumns(t *testing.T) {
	content := readEmbedded(t, "*_create_shelter_pairings.sql")
	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS shelter_pairings",
		`"leadRefugeeSSN" VARCHAR(11) NOT NULL`,
		`"shelterID" BIGINT NOT NULL`,
		"DROP TABLE IF EXISTS shelter_pairings",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateEmbedded(t *testing.T) {
	require.NoError(t, ValidateEmbedded())
	require.NoError(t, ValidateDir(embeddedDir))
}

func TestValidateDirRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_bad.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644))
	require.ErrorContains(t, ValidateDir(dir), "invalid migration filename")
}

func TestValidateDirRequiresDownSection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20250101000000_only_up.sql"), []byte("-- +goose Up\nSELECT 1;\n"), 0o644))
	require.ErrorContains(t, ValidateDir(dir), "missing \"-- +goose Down\"")
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Guest Notes!")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "_add_guest_notes.sql"), path)
	require.NoError(t, ValidateDir(dir))

	_, err = CreateSQLMigration(dir, "  !!  ")
	require.Error(t, err)
}

func TestMaybeRunDevAutoMigratesSQLite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:migrate_"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	client := db.NewFromGorm(conn)

	cfg := &config.Config{
		App:          config.AppConfig{Env: config.AppEnvDev},
		FeatureFlags: config.FeatureFlagsConfig{UseSQLite: true, AutoMigrate: true},
	}
	logg := logger.New(logger.Options{ServiceName: "migrate-test", Output: &strings.Builder{}})

	require.NoError(t, MaybeRunDev(context.Background(), cfg, logg, client))
	for _, table := range []string{models.TableHouses, models.TableMembers, models.TablePairings} {
		require.True(t, conn.Migrator().HasTable(table), "table %s missing", table)
	}
}

func TestMaybeRunDevSkipsOutsideDev(t *testing.T) {
	cfg := &config.Config{
		App:          config.AppConfig{Env: config.AppEnvProd},
		FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true},
	}
	require.NoError(t, MaybeRunDev(context.Background(), cfg, nil, nil))
}
