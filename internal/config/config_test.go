package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finview.yaml")

	cfg := Default()
	cfg.API.BaseURL = "https://api.example.com"
	cfg.Cache.TTL = time.Minute
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", loaded.API.BaseURL)
	assert.Equal(t, time.Minute, loaded.Cache.TTL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINVIEW_API_URL", "https://env.example.com")
	t.Setenv("FINVIEW_API_TIMEOUT", "5s")
	t.Setenv("FINVIEW_CACHE_TTL", "90s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

func TestEnvIgnoresBadDurations(t *testing.T) {
	t.Setenv("FINVIEW_API_TIMEOUT", "not-a-duration")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}
