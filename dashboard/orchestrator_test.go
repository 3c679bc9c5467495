package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/models"
)

func TestOrchestrator_LoadWeather(t *testing.T) {
	fake := newFakeProvider()
	// Monday 00:00 UTC, 40 entries cover five days plus the first hours of a sixth
	fake.entries = threeHourly(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), 40)

	o := NewOrchestrator(fake, fake, func(models.ForecastData) *time.Location { return time.UTC }, zerolog.Nop())

	current, days, err := o.LoadWeather(context.Background(), "Mumbai")
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", current.Name)
	require.Len(t, days, 5)
	for i, d := range days {
		assert.Equal(t, time.Weekday((int(time.Monday)+i)%7), d.Timestamp.Weekday())
		assert.Equal(t, time.UTC, d.Timestamp.Location())
	}

	weatherCalls, forecastCalls := fake.calls()
	assert.Equal(t, []string{"Mumbai"}, weatherCalls)
	assert.Equal(t, []string{"Mumbai"}, forecastCalls)
}

func TestOrchestrator_CurrentFailureSkipsForecast(t *testing.T) {
	fake := newFakeProvider()
	fake.weatherErr["Atlantis"] = errUpstream

	o := NewOrchestrator(fake, fake, nil, zerolog.Nop())

	_, days, err := o.LoadWeather(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUpstream))
	assert.Nil(t, days)

	weatherCalls, forecastCalls := fake.calls()
	assert.Equal(t, []string{"Atlantis"}, weatherCalls)
	assert.Empty(t, forecastCalls, "forecast must not be requested after current weather failed")
}

func TestOrchestrator_ForecastFailure(t *testing.T) {
	fake := newFakeProvider()
	fake.forecastErr["Lima"] = errUpstream

	o := NewOrchestrator(fake, fake, nil, zerolog.Nop())

	_, _, err := o.LoadWeather(context.Background(), "Lima")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forecast")
	assert.True(t, errors.Is(err, errUpstream))
}

func TestCityWeekdays_FallsBackToOffset(t *testing.T) {
	zone := CityWeekdays(nil, zerolog.Nop())
	loc := zone(models.ForecastData{TimezoneOffset: 19800})

	_, offset := time.Date(2026, 10, 19, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 19800, offset)
}

type stubTimezone struct {
	loc *time.Location
	err error
}

func (s stubTimezone) GetTimezone(float64, float64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.loc.String(), nil
}

func (s stubTimezone) Location(float64, float64) (*time.Location, error) {
	return s.loc, s.err
}

func TestCityWeekdays_UsesLookup(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	zone := CityWeekdays(stubTimezone{loc: tokyo}, zerolog.Nop())
	assert.Equal(t, tokyo, zone(models.ForecastData{TimezoneOffset: 0}))

	failing := CityWeekdays(stubTimezone{err: errors.New("ocean")}, zerolog.Nop())
	_, offset := time.Now().In(failing(models.ForecastData{TimezoneOffset: -3600})).Zone()
	assert.Equal(t, -3600, offset)
}

func TestLocalWeekdays(t *testing.T) {
	assert.Equal(t, time.Local, LocalWeekdays()(models.ForecastData{}))
}
