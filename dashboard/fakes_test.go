package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"weather-dashboard/models"
)

var errUpstream = errors.New("upstream exploded")

// fakeProvider serves canned data per city. A city listed in gates blocks
// GetWeather until the gate channel is closed, ignoring cancellation.
type fakeProvider struct {
	mu            sync.Mutex
	weatherCalls  []string
	forecastCalls []string
	weatherErr    map[string]error
	forecastErr   map[string]error
	gates         map[string]chan struct{}
	entries       []models.ForecastEntry
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		weatherErr:  map[string]error{},
		forecastErr: map[string]error{},
		gates:       map[string]chan struct{}{},
	}
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GetWeather(_ context.Context, city string) (models.CurrentWeather, error) {
	f.mu.Lock()
	f.weatherCalls = append(f.weatherCalls, city)
	gate := f.gates[city]
	err := f.weatherErr[city]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return models.CurrentWeather{}, err
	}
	return models.CurrentWeather{Name: city, Country: "XX", Temperature: 21.5, Icon: "01d"}, nil
}

func (f *fakeProvider) FetchForecast(_ context.Context, city string) (models.ForecastData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastCalls = append(f.forecastCalls, city)
	if err := f.forecastErr[city]; err != nil {
		return models.ForecastData{}, err
	}
	return models.ForecastData{City: city, Entries: f.entries}, nil
}

func (f *fakeProvider) calls() (weather, forecast []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.weatherCalls...), append([]string(nil), f.forecastCalls...)
}

// threeHourly returns n entries spaced three hours apart starting at start
func threeHourly(start time.Time, n int) []models.ForecastEntry {
	out := make([]models.ForecastEntry, n)
	for i := range out {
		out[i] = models.ForecastEntry{
			Timestamp:   start.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: float64(20 + i%5),
			Icon:        "02d",
		}
	}
	return out
}
