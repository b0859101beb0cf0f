package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DB_DATABASE", "styledecor_test")
	t.Setenv("DB_USERNAME", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PAYMENT_BASE_URL", "https://gateway.example")
	t.Setenv("PAYMENT_API_KEY", "sk_test_key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.AppHost)
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.internal port=5433 user=postgres password=secret dbname=styledecor_test sslmode=disable",
		cfg.DSN())
}

func TestJWTExpiryOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_EXPIRY", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
}
