package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "wavegram", cfg.Redis.ChannelPrefix)
	assert.Equal(t, "wavegram.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
backend:
  base_url: https://api.wavegram.dev
  api_key: file-key
redis:
  addr: redis.internal:6380
  channel_prefix: staging
store:
  path: /tmp/wavegram-test.db
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("WAVEGRAM_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.wavegram.dev", cfg.Backend.BaseURL)
	assert.Equal(t, "file-key", cfg.Backend.APIKey)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "staging", cfg.Redis.ChannelPrefix)
	assert.Equal(t, "/tmp/wavegram-test.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  base_url: https://file.example\n"), 0o644))

	t.Setenv("WAVEGRAM_CONFIG_PATH", path)
	t.Setenv("WAVEGRAM_BACKEND_URL", "https://env.example")
	t.Setenv("WAVEGRAM_BACKEND_KEY", "env-key")
	t.Setenv("WAVEGRAM_REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.Backend.BaseURL)
	assert.Equal(t, "env-key", cfg.Backend.APIKey)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestInvalidRedisDB(t *testing.T) {
	t.Setenv("WAVEGRAM_REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAVEGRAM_REDIS_DB")
}

func TestMissingConfigFile(t *testing.T) {
	t.Setenv("WAVEGRAM_CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Validate())

	cfg.Backend.BaseURL = "https://api.wavegram.dev"
	require.Error(t, cfg.Validate())

	cfg.Backend.APIKey = "anon"
	require.NoError(t, cfg.Validate())
}
