package dashboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"weather-dashboard/datasource"
	"weather-dashboard/forecast"
	"weather-dashboard/models"
)

// Orchestrator performs one fetch: current conditions, then the forecast
type Orchestrator struct {
	weather  datasource.WeatherProvider
	forecast datasource.ForecastSource
	zone     WeekdayZone
	logger   zerolog.Logger
}

// NewOrchestrator creates an orchestrator. A nil zone groups forecast days in local time.
func NewOrchestrator(weather datasource.WeatherProvider, source datasource.ForecastSource, zone WeekdayZone, logger zerolog.Logger) *Orchestrator {
	if zone == nil {
		zone = LocalWeekdays()
	}
	return &Orchestrator{
		weather:  weather,
		forecast: source,
		zone:     zone,
		logger:   logger.With().Str("component", "orchestrator").Logger(),
	}
}

// LoadWeather fetches current weather and then the forecast for city.
// The forecast request is only made once current weather succeeded.
// The returned forecast holds at most one entry per day, with timestamps
// expressed in the zone used for grouping.
func (o *Orchestrator) LoadWeather(ctx context.Context, city string) (models.CurrentWeather, []models.ForecastEntry, error) {
	current, err := o.weather.GetWeather(ctx, city)
	if err != nil {
		return models.CurrentWeather{}, nil, fmt.Errorf("%s current weather for %q: %w", o.weather.Name(), city, err)
	}

	raw, err := o.forecast.FetchForecast(ctx, city)
	if err != nil {
		return models.CurrentWeather{}, nil, fmt.Errorf("%s forecast for %q: %w", o.forecast.Name(), city, err)
	}

	loc := o.zone(raw)
	days := forecast.Normalize(raw.Entries, loc)
	for i := range days {
		days[i].Timestamp = days[i].Timestamp.In(loc)
	}

	o.logger.Debug().
		Str("city", city).
		Int("entries", len(raw.Entries)).
		Int("days", len(days)).
		Str("zone", loc.String()).
		Msg("forecast normalized")

	return current, days, nil
}
