package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LARGE_BONUS_POINTS", "250")

	c := Load()

	require.Equal(t, "test-secret", c.JWTSecret)
	assert.Equal(t, "9090", c.AppPort, "env must override the default port")
	assert.Equal(t, 250, c.LargeBonusPoints)

	// Untouched fields fall back to defaults.
	assert.Equal(t, 10, c.SmallBonusPoints)
	assert.Equal(t, 90, c.ActivityRetentionDays)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "info", c.LogLevel)
}

func TestGet_ReturnsCachedConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	first := Load()
	second := Get()
	assert.Equal(t, first, second)
}
