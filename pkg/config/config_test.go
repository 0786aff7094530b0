package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalYAML = `
environment: test
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "DEMO_KEY", cfg.Donki.APIKey)
	assert.Equal(t, "https://api.nasa.gov", cfg.Donki.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Donki.Timeout)
	assert.Equal(t, "https://services.swpc.noaa.gov", cfg.SWPC.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.SWPC.Timeout)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Enhancer.Transformers)
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
environment: production
server:
  port: 9090
  read_timeout: 5s
donki:
  api_key: REAL_KEY
  timeout: 10s
cache:
  ttl: 2m
enhancer:
  transformers: true
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "REAL_KEY", cfg.Donki.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Donki.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Enhancer.Transformers)
}

func TestLoad_NegativeTTLStaysNegative(t *testing.T) {
	// a negative ttl means "caching off" and must not be rewritten to
	// the 60s default
	cfg, err := Load(writeConfig(t, `
environment: test
cache:
  ttl: -1s
`))
	require.NoError(t, err)

	assert.Equal(t, -time.Second, cfg.Cache.TTL)
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("NASA_API_KEY", "ENV_KEY")
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "ENV_KEY", cfg.Donki.APIKey)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MissingEnvironmentFails(t *testing.T) {
	_, err := Load(writeConfig(t, `server: {port: 8080}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestLoad_InvalidPortFails(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
server:
  port: 70000
`))
	require.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
