package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Feed.Backend)
	assert.Equal(t, "tomato", cfg.Device.DefaultCrop)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", cfg.Device.ID.String())
	assert.Equal(t, 24*time.Hour, cfg.History.DefaultWindow)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FEED_BACKEND", "memory")
	t.Setenv("DEFAULT_CROP", "rice")
	t.Setenv("HISTORY_WINDOW_HOURS", "6")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEVICE_ID", "5f6a2d1e-8c3b-4f7a-9e0d-1b2c3d4e5f6a")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Feed.Backend)
	assert.Equal(t, "rice", cfg.Device.DefaultCrop)
	assert.Equal(t, 6*time.Hour, cfg.History.DefaultWindow)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "5f6a2d1e-8c3b-4f7a-9e0d-1b2c3d4e5f6a", cfg.Device.ID.String())
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("FEED_BACKEND", "kafka")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_BACKEND")
}

func TestLoad_InvalidDeviceID(t *testing.T) {
	t.Setenv("DEVICE_ID", "not-a-uuid")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEVICE_ID")
}

func TestLoad_RedisBackendUsesDefaultURL(t *testing.T) {
	t.Setenv("FEED_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379", cfg.Feed.RedisURL)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
