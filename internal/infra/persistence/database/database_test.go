package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"passmanager/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/gorm"
)

func sqliteConfig(t *testing.T, autoMigrate bool) *config.Config {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.AutoMigrate = autoMigrate
	cfg.Database.SQLite.Path = filepath.Join(t.TempDir(), "passmanager.db")

	return cfg
}

func tableNames(t *testing.T, db *gorm.DB) []string {
	var names []string
	require.NoError(t, db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&names).Error)

	return names
}

func TestNew_SQLiteWithMigrations(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := New(Params{Lifecycle: lc, Config: sqliteConfig(t, true), Logger: logger})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	names := tableNames(t, db)
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "service_passwords")
	assert.Contains(t, names, "schema_migrations")
}

func TestNew_SQLiteWithoutMigrations(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := New(Params{Lifecycle: lc, Config: sqliteConfig(t, false), Logger: logger})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	assert.NotContains(t, tableNames(t, db), "users")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	cfg := sqliteConfig(t, false)
	db, err := open(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, RunMigrations(sqlDB, config.DriverSQLite))
	require.NoError(t, RunMigrations(sqlDB, config.DriverSQLite))
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t, false)
	db, err := open(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Error(t, RunMigrations(sqlDB, "mysql"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "mysql"

	_, err := open(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
