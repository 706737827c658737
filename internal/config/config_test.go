package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "dev")
	t.Setenv("NODE_ENV", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CRON_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("REFRESH_TOKEN_TTL", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "taskboard.db", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.False(t, cfg.CookieSecure)
	assert.False(t, cfg.IsProd())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_NodeEnvFallback(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CRON_SECRET", "cron-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_ProdRequiresCronSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	assert.ErrorContains(t, err, "CRON_SECRET")
}

func TestLoad_InvalidDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "yesterday")

	_, err := Load()
	assert.ErrorContains(t, err, "ACCESS_TOKEN_TTL")
}

func TestLoad_RefreshMustOutliveAccess(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "2h")
	t.Setenv("REFRESH_TOKEN_TTL", "1h")

	_, err := Load()
	assert.ErrorContains(t, err, "REFRESH_TOKEN_TTL")
}
