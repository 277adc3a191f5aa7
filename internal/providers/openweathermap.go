package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ulascansenturk/weather-cli/internal/weather"
)

const DefaultBaseURL = "http://api.openweathermap.org"

var (
	ErrNetwork  = errors.New("weather provider unreachable")
	ErrProvider = errors.New("weather provider error")
	ErrDecode   = errors.New("malformed weather response")

	// ErrNoConditions is returned when the provider sends an empty weather list.
	ErrNoConditions = fmt.Errorf("%w: no weather conditions in response", ErrDecode)
)

type WeatherAPIService interface {
	GetWeather(ctx context.Context, query weather.Query) (weather.Record, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type weatherAPIService struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

// NewHTTPClient is the client used against the real provider.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

func NewWeatherAPIService(apiKey, baseURL string, httpClient HTTPClient, logger zerolog.Logger) WeatherAPIService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &weatherAPIService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// OpenWeatherMapResponse is the subset of the current weather payload we read.
// Pointers let us tell a missing field apart from a zero value.
type OpenWeatherMapResponse struct {
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name *string `json:"name"`
}

// APIError is the body OpenWeatherMap sends with non-2xx responses.
type APIError struct {
	Cod     any    `json:"cod"` // int or string depending on the endpoint
	Message string `json:"message"`
}

func (s *weatherAPIService) requestURL(query weather.Query) string {
	return fmt.Sprintf("%s/data/2.5/weather?q=%s,%s&units=metric&appid=%s",
		s.baseURL,
		url.QueryEscape(query.City),
		url.QueryEscape(query.CountryCode),
		url.QueryEscape(s.apiKey),
	)
}

func (s *weatherAPIService) GetWeather(ctx context.Context, query weather.Query) (weather.Record, error) {
	start := time.Now()
	logger := s.logger.With().
		Str("city", query.City).
		Str("country_code", query.CountryCode).
		Logger()

	logger.Debug().Msg("requesting current weather")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(query), nil)
	if err != nil {
		return weather.Record{}, fmt.Errorf("%w: %w", ErrNetwork, stripURL(err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error().Err(stripURL(err)).Dur("duration", time.Since(start)).Msg("weather request failed")
		return weather.Record{}, fmt.Errorf("%w: %w", ErrNetwork, stripURL(err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Error().Int("status_code", resp.StatusCode).Msg("weather provider returned non-success status")

		var apiErr APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return weather.Record{}, fmt.Errorf("%w: HTTP %d", ErrProvider, resp.StatusCode)
		}
		return weather.Record{}, fmt.Errorf("%w: HTTP %d: %s", ErrProvider, resp.StatusCode, apiErr.Message)
	}

	var apiResp OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		logger.Error().Err(err).Msg("weather provider returned malformed JSON")
		return weather.Record{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	record, err := apiResp.toRecord()
	if err != nil {
		logger.Error().Err(err).Msg("weather response is missing fields")
		return weather.Record{}, err
	}

	logger.Info().
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("fetched current weather")

	return record, nil
}

func (r OpenWeatherMapResponse) toRecord() (weather.Record, error) {
	var missing []string
	if r.Main == nil {
		missing = append(missing, "main")
	} else {
		if r.Main.Temp == nil {
			missing = append(missing, "main.temp")
		}
		if r.Main.Humidity == nil {
			missing = append(missing, "main.humidity")
		}
		if r.Main.Pressure == nil {
			missing = append(missing, "main.pressure")
		}
	}
	if r.Wind == nil || r.Wind.Speed == nil {
		missing = append(missing, "wind.speed")
	}
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return weather.Record{}, fmt.Errorf("%w: missing %s", ErrDecode, strings.Join(missing, ", "))
	}

	if len(r.Weather) == 0 {
		return weather.Record{}, ErrNoConditions
	}
	if r.Weather[0].Description == nil {
		return weather.Record{}, fmt.Errorf("%w: missing weather[0].description", ErrDecode)
	}

	return weather.Record{
		Description:              *r.Weather[0].Description,
		TemperatureCelsius:       *r.Main.Temp,
		HumidityPercent:          *r.Main.Humidity,
		PressureHpa:              *r.Main.Pressure,
		WindSpeedMetersPerSecond: *r.Wind.Speed,
		LocationName:             *r.Name,
	}, nil
}

// stripURL drops the request URL from transport errors so the api key never
// reaches logs or the terminal.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
