package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	HTTPTimeout        int32

	LogLevel string
	LogFile  string

	HistoryEnabled bool
	DBName         string
	DBPassword     string
	DBUser         string
	DBPort         string
	DBHost         string
}

// LoadConfig reads environment variables, falling back to a .env file in the
// working directory. The result is never mutated afterwards.
func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-cli")
	v.SetDefault("OPENWEATHER_API_KEY", "")
	v.SetDefault("OPENWEATHER_BASE_URL", "http://api.openweathermap.org")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "./log/weather-cli.log")
	v.SetDefault("HISTORY_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_NAME", "weather")
	v.SetDefault("DATABASE_USER", "weather")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFile:            v.GetString("LOG_FILE"),
		HistoryEnabled:     v.GetBool("HISTORY_ENABLED"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
	}

	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", config.HTTPTimeout)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DSN is the postgres connection string for the query history database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
