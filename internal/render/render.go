package render

import (
	"fmt"

	"github.com/fatih/color"

	"ulascansenturk/weather-cli/internal/weather"
)

const (
	SymbolFreezing = "❄️"
	SymbolCold     = "☁️"
	SymbolMild     = "⛅"
	SymbolWarm     = "🌤️"
	SymbolHot      = "🔥"
)

type Style int

const (
	Plain Style = iota
	BrightYellow
	BrightBlue
	Dimmed
	BrightCyan
)

func (s Style) color() *color.Color {
	switch s {
	case BrightYellow:
		return color.New(color.FgHiYellow)
	case BrightBlue:
		return color.New(color.FgHiBlue)
	case Dimmed:
		return color.New(color.Faint)
	case BrightCyan:
		return color.New(color.FgHiCyan)
	default:
		return nil
	}
}

// Apply wraps text in the style's escape codes. Plain text is returned as is.
func (s Style) Apply(text string) string {
	c := s.color()
	if c == nil {
		return text
	}
	return c.Sprint(text)
}

type styleRule struct {
	phrases []string
	style   Style
}

// Evaluated top to bottom, exact and case-sensitive.
var styleRules = []styleRule{
	{phrases: []string{"clear sky"}, style: BrightYellow},
	{phrases: []string{"few clouds", "scattered clouds", "broken clouds"}, style: BrightBlue},
	{phrases: []string{"overcast clouds", "mist", "haze", "smoke", "dust", "fog"}, style: Dimmed},
	{phrases: []string{"rain", "thunderstorm", "snow"}, style: BrightCyan},
}

// StyleFor returns the style of the first rule listing description, or Plain.
func StyleFor(description string) Style {
	for _, rule := range styleRules {
		for _, phrase := range rule.phrases {
			if phrase == description {
				return rule.style
			}
		}
	}
	return Plain
}

// TemperatureSymbol maps a Celsius temperature to its symbol. Each tier
// includes its lower bound, so 0 is cold rather than freezing.
func TemperatureSymbol(celsius float64) string {
	switch {
	case celsius < 0:
		return SymbolFreezing
	case celsius < 10:
		return SymbolCold
	case celsius < 20:
		return SymbolMild
	case celsius < 30:
		return SymbolWarm
	default:
		return SymbolHot
	}
}

// Block is the uncolored weather report for record.
func Block(record weather.Record) string {
	return fmt.Sprintf(
		"Weather Update for %s: %s %s\n"+
			"> Temperature: %.1f°C\n"+
			"> Humidity: %.1f%%\n"+
			"> Pressure: %.1f hPa\n"+
			"> Wind Speed: %.1f m/s",
		record.LocationName,
		record.Description,
		TemperatureSymbol(record.TemperatureCelsius),
		record.TemperatureCelsius,
		record.HumidityPercent,
		record.PressureHpa,
		record.WindSpeedMetersPerSecond,
	)
}

// Format is Block styled after the record's description.
func Format(record weather.Record) string {
	return StyleFor(record.Description).Apply(Block(record))
}
