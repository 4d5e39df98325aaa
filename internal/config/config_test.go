package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("TEMPLATE_GLOB", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "templates/*.html", cfg.TemplateGlob)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATABASE_DSN", "postgres://localhost/accounts")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("SESSION_TTL", "1h")

	cfg := Load()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "postgres://localhost/accounts", cfg.DatabaseDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPassword)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
