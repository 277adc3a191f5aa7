package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulascansenturk/weather-cli/internal/logger"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "weather-cli.log")

	l, closer := logger.NewLogger(path, "weather-cli-test", "debug")
	l.Debug().Str("city", "Lviv").Msg("requesting current weather")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"service_name":"weather-cli-test"`)
	assert.Contains(t, string(content), `"city":"Lviv"`)
	assert.Contains(t, string(content), `"message":"requesting current weather"`)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather-cli.log")

	l, closer := logger.NewLogger(path, "weather-cli-test", "loud")
	t.Cleanup(func() { closer.Close() })

	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewLoggerDisabled(t *testing.T) {
	l, closer := logger.NewLogger("", "weather-cli-test", "debug")

	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NoError(t, closer.Close())
}
