package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVICE_NAME", "OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "HTTP_TIMEOUT",
	"LOG_LEVEL", "LOG_FILE", "HISTORY_ENABLED",
	"DATABASE_HOST", "DATABASE_PORT", "DATABASE_NAME", "DATABASE_USER", "DATABASE_PASSWORD",
}

// clearEnv blanks every key; viper ignores empty variables by default.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "weather-cli", cfg.ServiceName)
	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "http://api.openweathermap.org", cfg.OpenWeatherBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeoutDuration())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./log/weather-cli.log", cfg.LogFile)
	assert.False(t, cfg.HistoryEnabled)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := "OPENWEATHER_API_KEY=from-file\nHTTP_TIMEOUT=3\nHISTORY_ENABLED=true\nDATABASE_PASSWORD=secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.OpenWeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeoutDuration())
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, "secret", cfg.DBPassword)
}

func TestLoadConfigEnvOverridesDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENWEATHER_API_KEY=from-file\n"), 0o600))
	t.Setenv("OPENWEATHER_API_KEY", "from-env")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OpenWeatherAPIKey)
}

func TestLoadConfigRejectsNonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_TIMEOUT", "0")

	_, err := loadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "weather"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=weather sslmode=disable", cfg.DSN())
}
