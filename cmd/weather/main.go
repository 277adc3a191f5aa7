package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ulascansenturk/weather-cli/config"
	"ulascansenturk/weather-cli/internal/db/weatherquery"
	"ulascansenturk/weather-cli/internal/interaction"
	"ulascansenturk/weather-cli/internal/logger"
	"ulascansenturk/weather-cli/internal/providers"
	"ulascansenturk/weather-cli/internal/service"
)

const interruptedExitCode = 130

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	appLogger, logCloser := logger.NewLogger(conf.LogFile, conf.ServiceName, conf.LogLevel)

	if err := run(conf, appLogger, logCloser); err != nil {
		appLogger.Error().Err(err).Msg("weather-cli stopped")
		logCloser.Close()
		log.Fatal().Err(err).Msg("weather-cli stopped")
	}

	logCloser.Close()
}

func run(conf *config.Config, appLogger zerolog.Logger, logCloser io.Closer) error {
	ctx, mainCtxStop := context.WithCancel(context.Background())
	defer mainCtxStop()

	var (
		db          *gorm.DB
		weatherRepo weatherquery.Repository
	)
	if conf.HistoryEnabled {
		var err error
		db, err = initializeDatabase(conf)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer closeDatabase(db, appLogger)

		weatherRepo = weatherquery.NewRepository(db)
		appLogger.Info().Str("host", conf.DBHost).Msg("query history enabled")
	}

	handleSignals(mainCtxStop, interruptHandler(db, appLogger, logCloser, color.Output, os.Exit))

	if conf.OpenWeatherAPIKey == "" {
		appLogger.Warn().Msg("OPENWEATHER_API_KEY is empty, the provider will reject every request")
	}

	weatherAPIService := providers.NewWeatherAPIService(
		conf.OpenWeatherAPIKey,
		conf.OpenWeatherBaseURL,
		providers.NewHTTPClient(conf.HTTPTimeoutDuration()),
		appLogger,
	)
	weatherService := service.NewWeatherService(weatherAPIService, weatherRepo, conf.HTTPTimeoutDuration(), appLogger)

	loop := interaction.NewLoop(weatherService, os.Stdin, color.Output, color.Error, appLogger)

	appLogger.Info().Msg("session started")

	err := loop.Run(ctx)
	switch {
	case err == nil:
		appLogger.Info().Msg("session finished")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	// gorm's default logger writes to stdout.
	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

// interruptHandler releases what the deferred calls in run would have released,
// since exit skips them. db is nil when history is disabled.
func interruptHandler(db *gorm.DB, appLogger zerolog.Logger, logCloser io.Closer, out io.Writer, exit func(int)) func() {
	return func() {
		appLogger.Info().Msg("interrupted, exiting")
		fmt.Fprintln(out)
		if db != nil {
			closeDatabase(db, appLogger)
		}
		logCloser.Close()
		exit(interruptedExitCode)
	}
}

func closeDatabase(db *gorm.DB, appLogger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error().Err(err).Msg("failed to get database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		appLogger.Error().Err(err).Msg("failed to close database")
	}
}

// handleSignals cancels the session context and runs callback on the first
// interrupt. The callback is expected to exit, since stdin reads cannot be
// interrupted.
func handleSignals(cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig

		cancelCtx()
		callback()
	}()
}
