package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	"github.com/hoshibmatchi/hoshi-client/pkg/env"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(env.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8000", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "localhost:9000", cfg.Media.StorageHost)
	assert.Equal(t, "media", cfg.Media.StorageBucket)
	assert.Equal(t, time.Hour, cfg.Media.DefaultExpiryDuration())
	assert.Equal(t, "/placeholder.svg?height=400&width=400", cfg.Media.FallbackURL)
	assert.False(t, cfg.Media.DeduplicateInFlight)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "~/.hoshi", cfg.Session.KeyringDir)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load(env.WithEnvironment(map[string]string{
		"API_URL":                    "https://api.hoshi.dev",
		"API_RETRY_MAX":              "2",
		"MEDIA_STORAGE_HOST":         "minio:9000",
		"MEDIA_DEFAULT_EXPIRY":       "600",
		"MEDIA_BATCH_WORKERS":        "4",
		"MEDIA_DEDUPLICATE_INFLIGHT": "true",
		"SESSION_KEYRING_PASSWORD":   "secret",
		"HTTP_CORS_ORIGINS":          "https://hoshi.dev,http://localhost:5173",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.hoshi.dev", cfg.API.URL)
	assert.Equal(t, uint64(2), cfg.API.RetryMax)
	assert.Equal(t, "minio:9000", cfg.Media.StorageHost)
	assert.Equal(t, 10*time.Minute, cfg.Media.DefaultExpiryDuration())
	assert.Equal(t, 4, cfg.Media.BatchWorkers)
	assert.True(t, cfg.Media.DeduplicateInFlight)
	assert.Equal(t, "secret", cfg.Session.KeyringPassword)
	assert.Equal(t, []string{"https://hoshi.dev", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
}
