package datasource

import (
	"context"

	"weather-dashboard/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a city
	GetWeather(ctx context.Context, city string) (models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the raw multi-day forecast list for a city
	FetchForecast(ctx context.Context, city string) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// Provider serves both current conditions and forecasts
type Provider interface {
	WeatherProvider
	ForecastSource
}
