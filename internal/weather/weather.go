package weather

// Query is one location lookup entered by the user.
type Query struct {
	City        string
	CountryCode string
}

// Record is the normalized result of a successful lookup.
type Record struct {
	Description              string
	TemperatureCelsius       float64
	HumidityPercent          float64
	PressureHpa              float64
	WindSpeedMetersPerSecond float64
	LocationName             string
}
