package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.Server.RateLimitWindow)
	assert.Equal(t, 30*time.Second, cfg.MLService.Timeout)
	assert.False(t, cfg.S3.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("S3_ENABLED", "true")
	t.Setenv("S3_BUCKET", "meals")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Server.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.True(t, cfg.S3.Enabled)
	assert.Equal(t, "meals", cfg.S3.Bucket)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")

	assert.Equal(t, int64(7), getEnvAsInt64("X_INT", 7))
	assert.True(t, getEnvAsBool("X_BOOL", true))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
}

func TestValidate_OTELNeedsEndpoint(t *testing.T) {
	cfg := &Config{
		JWT:  JWTConfig{Secret: "s", AccessTokenExpiry: time.Hour, RefreshTokenExpiry: time.Hour},
		OTEL: OTELConfig{Enabled: true},
	}
	assert.ErrorContains(t, cfg.Validate(), "OTEL_ENDPOINT")
}
