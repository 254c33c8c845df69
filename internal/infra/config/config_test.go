package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKeys(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("WEATHER_API_KEY", "weather-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("WEATHER_CACHE_TTL", "15m")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "weather-key", cfg.Weather.APIKey)
	require.Equal(t, "gemini-key", cfg.Gemini.APIKey)
	require.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.BaseURL)
	require.Equal(t, 15*time.Minute, cfg.Weather.CacheTTL)
	require.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, 60, cfg.HTTP.RateLimit.RequestsPerMinute)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	payload := `
http:
  address: ":7070"
  rateLimit:
    enabled: false
weather:
  apiKey: file-weather-key
  cacheTtl: 1h
gemini:
  apiKey: file-gemini-key
  model: gemini-2.0-flash
queryLog:
  postgres:
    dsn: postgres://localhost/travel
    maxConns: 8
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, "file-weather-key", cfg.Weather.APIKey)
	require.Equal(t, time.Hour, cfg.Weather.CacheTTL)
	require.Equal(t, "postgres://localhost/travel", cfg.QueryLog.Postgres.DSN)
	require.Equal(t, int32(8), cfg.QueryLog.Postgres.MaxConns)
}

func TestValidateRejectsRedisWithoutAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Weather.APIKey = "k"
	cfg.Gemini.APIKey = "k"
	cfg.Weather.Redis.Enabled = true

	require.Error(t, cfg.Validate())

	cfg.Weather.Redis.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}
