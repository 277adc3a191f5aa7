package weatherquery

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ulascansenturk/weather-cli/internal/weather"
)

type Repository interface {
	LogWeatherQuery(ctx context.Context, query weather.Query, record weather.Record) error
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(ctx context.Context, query weather.Query, record weather.Record) error {
	row := WeatherQuery{
		City:         query.City,
		CountryCode:  query.CountryCode,
		LocationName: record.LocationName,
		Description:  record.Description,
		Temperature:  record.TemperatureCelsius,
		Humidity:     record.HumidityPercent,
		Pressure:     record.PressureHpa,
		WindSpeed:    record.WindSpeedMetersPerSecond,
		CreatedAt:    time.Now(),
	}

	return r.db.WithContext(ctx).Create(&row).Error
}
