package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ulascansenturk/weather-cli/internal/db/weatherquery"
	"ulascansenturk/weather-cli/internal/providers"
	"ulascansenturk/weather-cli/internal/weather"
)

type WeatherService interface {
	GetWeather(ctx context.Context, query weather.Query) (weather.Record, error)
}

type weatherService struct {
	weatherAPI       providers.WeatherAPIService
	weatherQueryRepo weatherquery.Repository // nil when history is disabled
	timeout          time.Duration
	logger           zerolog.Logger
}

func NewWeatherService(
	weatherAPI providers.WeatherAPIService,
	weatherQueryRepo weatherquery.Repository,
	timeout time.Duration,
	logger zerolog.Logger,
) WeatherService {
	return &weatherService{
		weatherAPI:       weatherAPI,
		weatherQueryRepo: weatherQueryRepo,
		timeout:          timeout,
		logger:           logger,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, query weather.Query) (weather.Record, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	record, err := s.weatherAPI.GetWeather(ctx, query)
	if err != nil {
		return weather.Record{}, err
	}

	if s.weatherQueryRepo != nil {
		if err := s.weatherQueryRepo.LogWeatherQuery(ctx, query, record); err != nil {
			s.logger.Error().
				Err(err).
				Str("city", query.City).
				Str("country_code", query.CountryCode).
				Msg("failed to log weather query")
		}
	}

	return record, nil
}
