package interaction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"ulascansenturk/weather-cli/internal/render"
	"ulascansenturk/weather-cli/internal/service"
	"ulascansenturk/weather-cli/internal/weather"
)

const (
	welcomeMessage     = "Welcome to Weather App!"
	farewellMessage    = "Thank you for using Weather App!"
	cityPrompt         = "Enter the name of the city:"
	countryPrompt      = "Enter the country code (e.g., US for United States):"
	continuationPrompt = "Would you like to check the weather for another location? (yes/no):"
	continuationAnswer = "yes"
	errorLinePrefix    = "Error retrieving weather information: "
)

// ErrInputClosed means no further interaction is possible.
var ErrInputClosed = errors.New("input closed")

type State int

const (
	Prompting State = iota
	Terminated
)

func (s State) String() string {
	if s == Prompting {
		return "prompting"
	}
	return "terminated"
}

// Next returns the state that follows a continuation answer.
func Next(answer string) State {
	if strings.EqualFold(strings.TrimSpace(answer), continuationAnswer) {
		return Prompting
	}
	return Terminated
}

type Loop struct {
	weatherService service.WeatherService
	in             *bufio.Reader
	out            io.Writer
	errOut         io.Writer
	logger         zerolog.Logger

	banner *color.Color
	label  *color.Color
}

func NewLoop(weatherService service.WeatherService, in io.Reader, out, errOut io.Writer, logger zerolog.Logger) *Loop {
	return &Loop{
		weatherService: weatherService,
		in:             bufio.NewReader(in),
		out:            out,
		errOut:         errOut,
		logger:         logger,
		banner:         color.New(color.FgHiYellow),
		label:          color.New(color.FgHiGreen),
	}
}

// Run drives the prompt, fetch, render and continuation cycle until the user
// declines to continue. It returns ErrInputClosed when stdin runs dry and the
// context error when ctx is cancelled between iterations.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, l.banner.Sprint(welcomeMessage))

	state := Prompting
	for state == Prompting {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		state, err = l.iterate(ctx)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(l.out, farewellMessage)
	return nil
}

func (l *Loop) iterate(ctx context.Context) (State, error) {
	query, err := l.readQuery()
	if err != nil {
		return Terminated, err
	}

	record, err := l.weatherService.GetWeather(ctx, query)
	if err != nil {
		l.logger.Warn().
			Err(err).
			Str("city", query.City).
			Str("country_code", query.CountryCode).
			Msg("weather lookup failed")
		fmt.Fprintln(l.errOut, errorLinePrefix+err.Error())
	} else {
		fmt.Fprintln(l.out, render.Format(record))
	}

	answer, err := l.prompt(continuationPrompt)
	if err != nil {
		return Terminated, err
	}

	next := Next(answer)
	l.logger.Debug().Str("state", next.String()).Msg("continuation answered")

	return next, nil
}

func (l *Loop) readQuery() (weather.Query, error) {
	city, err := l.prompt(cityPrompt)
	if err != nil {
		return weather.Query{}, err
	}

	countryCode, err := l.prompt(countryPrompt)
	if err != nil {
		return weather.Query{}, err
	}

	return weather.Query{City: city, CountryCode: countryCode}, nil
}

func (l *Loop) prompt(label string) (string, error) {
	fmt.Fprintln(l.out, l.label.Sprint(label))

	line, err := l.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return strings.TrimSpace(line), nil
}
