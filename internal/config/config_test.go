package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMap(m map[string]string) (Config, error) {
	return parse(env.Options{Environment: m})
}

func TestDefaults(t *testing.T) {
	cfg, err := parseMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 10*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, time.Hour, cfg.RoomIdleTTL)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestOverrides(t *testing.T) {
	cfg, err := parseMap(map[string]string{
		"PORT":             "9000",
		"STORE_BACKEND":    "redis",
		"REDIS_URL":        "redis://localhost:6379/0",
		"CORS_ORIGINS":     "http://a.test,http://b.test",
		"ROOM_IDLE_TTL":    "30m",
		"DEBUG":            "true",
		"RATE_LIMIT_BURST": "5",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Minute, cfg.RoomIdleTTL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestValidation(t *testing.T) {
	tests := map[string]map[string]string{
		"redis without url":    {"STORE_BACKEND": "redis"},
		"postgres without dsn": {"STORE_BACKEND": "postgres"},
		"unknown backend":      {"STORE_BACKEND": "sqlite"},
		"zero ttl":             {"ROOM_IDLE_TTL": "0s"},
		"bad duration":         {"CLEANUP_INTERVAL": "soon"},
		"zero burst":           {"RATE_LIMIT_BURST": "0"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseMap(environ)
			assert.Error(t, err)
		})
	}
}
