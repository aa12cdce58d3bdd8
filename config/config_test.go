package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadWithEnv_SQLiteFile(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("sqlite", "testdata")
	require.NoError(t, err)
	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, "passmanager", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 10, cfg.PasswordStrength.MinLength)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_SQLITE_PATH", "override.db")
	t.Setenv("PASSWORDSTRENGTH_MINLENGTH", "12")

	cfg, err := LoadWithEnv[Config]("sqlite", "testdata")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "override.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 12, cfg.PasswordStrength.MinLength)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", "testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = DriverSQLite
	cfg.Database.SQLite.Path = "dev.db"

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_InvalidDatabase(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr string
	}{
		{name: "unknown driver", driver: "mysql", wantErr: "unsupported database driver"},
		{name: "postgres without section", driver: "", wantErr: "postgres configuration is required"},
		{name: "sqlite without path", driver: "sqlite", wantErr: "database.sqlite.path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Database.Driver = tt.driver

			err := applyDefaults(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
