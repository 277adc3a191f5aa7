package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	City         string    `json:"city" gorm:"index:idx_location"`
	CountryCode  string    `json:"country_code" gorm:"index:idx_location"`
	LocationName string    `json:"location_name"`
	Description  string    `json:"description"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	Pressure     float64   `json:"pressure"`
	WindSpeed    float64   `json:"wind_speed"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
