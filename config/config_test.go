package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakegulf-cms/config"
)

func TestLoadDefaultsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
	assert.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("JWT_EXPIRES_IN")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nJWT_EXPIRES_IN=2h\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("from-file"), cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}

func TestLoadRejectsBadExpiry(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_EXPIRES_IN", "seven days")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "JWT_EXPIRES_IN")
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	cfg := config.Config{DatabaseURL: "postgres://u:p@db:5432/cms", DBHost: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/cms", cfg.DSN())

	cfg = config.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "cms", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=cms sslmode=disable", cfg.DSN())
}
