package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes a variable for the duration of the test. t.Setenv is
// called first so the original value is restored on cleanup.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "chat")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "chatline")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("ASSET_ENDPOINT", "http://localhost:9000")
	t.Setenv("ASSET_BUCKET", "chat-assets")
	t.Setenv("ASSET_ACCESS_KEY", "minio")
	t.Setenv("ASSET_SECRET_KEY", "minio123")
}

func TestLoadConfigDefaults(t *testing.T) {
	setValidEnv(t)
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_POOL_SIZE", "JWT_TOKEN_DURATION",
		"ASSET_PUBLIC_BASE_URL", "PORT", "APP_ENV", "CLIENT_ORIGIN",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "http://localhost:5173", cfg.Server.ClientOrigin)
	assert.Equal(t, "http://localhost:9000", cfg.Assets.PublicBaseURL, "defaults to the endpoint")
}

func TestLoadConfigOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_TOKEN_DURATION", "30m")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("ASSET_PUBLIC_BASE_URL", "https://cdn.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 25, cfg.DB.MaxSize)
	assert.Equal(t, "https://cdn.example.com", cfg.Assets.PublicBaseURL)
}

// Every missing required variable must appear in one aggregated error.
func TestLoadConfigCollectsAllErrors(t *testing.T) {
	setValidEnv(t)
	unsetEnv(t, "DB_USER")
	unsetEnv(t, "JWT_SECRET")
	unsetEnv(t, "ASSET_BUCKET")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "ASSET_BUCKET")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("JWT_TOKEN_DURATION", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
}
