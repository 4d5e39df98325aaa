package config

import (
	"os"
	"time"
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	SessionTTL time.Duration

	TemplateGlob string
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SessionTTL: getduration("SESSION_TTL", 24*time.Hour),

		TemplateGlob: getenv("TEMPLATE_GLOB", "templates/*.html"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
