package openweathermap

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/models"
)

// forecastResponse is the 5 day / 3 hour forecast payload
type forecastResponse struct {
	City struct {
		Name  string `json:"name"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"` // seconds from UTC
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// FetchForecast gets the raw forecast list for a city in provider order
func (c *Client) FetchForecast(ctx context.Context, city string) (models.ForecastData, error) {
	var resp forecastResponse
	if err := c.get(ctx, "forecast", city, &resp); err != nil {
		return models.ForecastData{}, fmt.Errorf("fetch forecast: %w", err)
	}

	data := models.ForecastData{
		City:           resp.City.Name,
		Country:        resp.City.Country,
		Coord:          models.Coordinates{Lat: resp.City.Coord.Lat, Lon: resp.City.Coord.Lon},
		TimezoneOffset: resp.City.Timezone,
		Entries:        make([]models.ForecastEntry, 0, len(resp.List)),
	}

	for _, item := range resp.List {
		entry := models.ForecastEntry{
			Timestamp:   time.Unix(item.Dt, 0),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		data.Entries = append(data.Entries, entry)
	}

	return data, nil
}
