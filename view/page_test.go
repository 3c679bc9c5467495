package view

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/dashboard"
	"weather-dashboard/models"
)

var now = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func readySnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		City:       "Mumbai",
		Generation: 1,
		Weather: &models.CurrentWeather{
			Name:        "Mumbai",
			Country:     "IN",
			Temperature: 30.5,
			Humidity:    70,
			WindSpeed:   4.12,
			Description: "haze",
			Icon:        "50d",
		},
		Forecast: []models.ForecastEntry{
			{Timestamp: now.Add(3 * time.Hour), Temperature: 29.49, Description: "light rain", Icon: "10d"},
			{Timestamp: now.Add(27 * time.Hour), Temperature: -0.5, Description: "snow", Icon: "13d"},
		},
	}
}

func TestBuild_Loading(t *testing.T) {
	page := Build(dashboard.Snapshot{City: "Paris", Loading: true}, now, DefaultOptions())

	assert.Equal(t, "loading", page.Status)
	assert.Equal(t, LoadingMessage, page.Message)
	assert.Nil(t, page.Current)
	assert.Nil(t, page.Details)
	assert.Empty(t, page.Forecast)
}

func TestBuild_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		snap dashboard.Snapshot
	}{
		{name: "failed cycle", snap: dashboard.Snapshot{City: "Atlantis", Err: errors.New("404")}},
		{name: "nothing fetched", snap: dashboard.Snapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Build(tt.snap, now, DefaultOptions())
			assert.Equal(t, "unavailable", page.Status)
			assert.Equal(t, "Could not fetch weather data.", page.Message)
			assert.Nil(t, page.Current)
			assert.Empty(t, page.Forecast)
		})
	}
}

func TestBuild_Ready(t *testing.T) {
	page := Build(readySnapshot(), now, Options{Location: time.UTC})

	assert.Equal(t, "ready", page.Status)
	assert.Empty(t, page.Message)

	require.NotNil(t, page.Current)
	assert.Equal(t, "Monday", page.Current.Weekday)
	assert.Equal(t, "10/19/2026", page.Current.Date)
	assert.Equal(t, "Mumbai - IN", page.Current.Location)
	assert.Equal(t, "31°C", page.Current.Temperature)
	assert.Equal(t, "haze", page.Current.Description)
	assert.Equal(t, "http://openweathermap.org/img/wn/50d@2x.png", page.Current.IconURL)

	require.NotNil(t, page.Details)
	assert.Equal(t, "70%", page.Details.Humidity)
	assert.Equal(t, "4.12 m/s", page.Details.Wind)
	assert.Equal(t, NotAvailable, page.Details.UVIndex)
	assert.Equal(t, NotAvailable, page.Details.Population)

	require.Len(t, page.Forecast, 2)
	assert.Equal(t, "Monday", page.Forecast[0].Day)
	assert.Equal(t, "29°C", page.Forecast[0].Temperature)
	assert.Equal(t, "http://openweathermap.org/img/wn/10d@2x.png", page.Forecast[0].IconURL)
	assert.Equal(t, "Tuesday", page.Forecast[1].Day)
	assert.Equal(t, "0°C", page.Forecast[1].Temperature)
}

func TestBuild_CustomIconTemplate(t *testing.T) {
	page := Build(readySnapshot(), now, Options{IconURLTemplate: "/static/icons/%s.svg"})
	assert.Equal(t, "/static/icons/50d.svg", page.Current.IconURL)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{0, 0},
		{29.99, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1/5/2027", FormatDate(time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)))
}
