package interaction_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ulascansenturk/weather-cli/internal/interaction"
	"ulascansenturk/weather-cli/internal/providers"
	"ulascansenturk/weather-cli/internal/service"
)

func TestSessionAgainstProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Tokyo,JP" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Write([]byte(`{
			"weather": [{"description": "clear sky"}],
			"main": {"temp": 31.26, "humidity": 48, "pressure": 1009},
			"wind": {"speed": 2.06},
			"name": "Tokyo"
		}`))
	}))
	defer server.Close()

	weatherAPI := providers.NewWeatherAPIService("key", server.URL, providers.NewHTTPClient(time.Second), zerolog.Nop())
	svc := service.NewWeatherService(weatherAPI, nil, time.Second, zerolog.Nop())

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	input := "Atlantis\nXX\nyes\nTokyo\nJP\nno\n"

	err := interaction.NewLoop(svc, strings.NewReader(input), out, errOut, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "Error retrieving weather information:")
	assert.Contains(t, errOut.String(), "city not found")
	assert.Contains(t, out.String(), "Weather Update for Tokyo: clear sky 🔥")
	assert.Contains(t, out.String(), "> Temperature: 31.3°C")
	assert.Contains(t, out.String(), "> Humidity: 48.0%")
	assert.Contains(t, out.String(), "> Pressure: 1009.0 hPa")
	assert.Contains(t, out.String(), "> Wind Speed: 2.1 m/s")
}

func TestSessionSurvivesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	weatherAPI := providers.NewWeatherAPIService("key", baseURL, providers.NewHTTPClient(time.Second), zerolog.Nop())
	svc := service.NewWeatherService(weatherAPI, nil, time.Second, zerolog.Nop())

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := interaction.NewLoop(svc, strings.NewReader("Oslo\nNO\nno\n"), out, errOut, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(errOut.String(), "Error retrieving weather information:"))
	assert.Contains(t, out.String(), "Would you like to check the weather for another location? (yes/no):")
	assert.Contains(t, out.String(), "Thank you for using Weather App!")
}
