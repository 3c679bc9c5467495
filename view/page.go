// Package view turns a dashboard snapshot into what the page shows.
package view

import (
	"fmt"
	"math"
	"time"

	"weather-dashboard/dashboard"
	"weather-dashboard/providers/openweathermap"
)

const (
	// LoadingMessage is shown while a fetch cycle is running
	LoadingMessage = "Loading..."
	// UnavailableMessage is shown when the latest cycle failed or produced no data
	UnavailableMessage = "Could not fetch weather data."
	// NotAvailable labels fields the provider does not supply
	NotAvailable = "Unavailable"
)

// Options controls formatting
type Options struct {
	// IconURLTemplate is a printf template taking the icon code
	IconURLTemplate string
	// Location is used for today's weekday and date. Nil means time.Local.
	Location *time.Location
}

// DefaultOptions uses the provider CDN icons and local time
func DefaultOptions() Options {
	return Options{IconURLTemplate: openweathermap.DefaultIconURLTemplate}
}

// Page is the render model of the dashboard
type Page struct {
	Status   string         `json:"status" enum:"loading,ready,unavailable"`
	City     string         `json:"city"`
	Message  string         `json:"message,omitempty"`
	Current  *Current       `json:"current,omitempty"`
	Details  *Details       `json:"details,omitempty"`
	Forecast []ForecastCard `json:"forecast,omitempty"`
}

// Current is the left panel: today and the headline conditions
type Current struct {
	Weekday     string `json:"weekday"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	IconURL     string `json:"iconUrl,omitempty"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// Details is the right panel
type Details struct {
	UVIndex    string `json:"uvIndex"`
	Humidity   string `json:"humidity"`
	Wind       string `json:"wind"`
	Population string `json:"population"`
}

// ForecastCard is one day of the forecast strip
type ForecastCard struct {
	Day         string `json:"day"`
	Timestamp   int64  `json:"timestamp"`
	IconURL     string `json:"iconUrl,omitempty"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// Build maps a snapshot to exactly one of the loading, ready or unavailable pages
func Build(snap dashboard.Snapshot, now time.Time, opts Options) Page {
	page := Page{
		Status: snap.Status().String(),
		City:   snap.City,
	}

	switch snap.Status() {
	case dashboard.StatusLoading:
		page.Message = LoadingMessage
		return page
	case dashboard.StatusUnavailable:
		page.Message = UnavailableMessage
		return page
	}

	if opts.IconURLTemplate == "" {
		opts.IconURLTemplate = openweathermap.DefaultIconURLTemplate
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc)
	w := snap.Weather

	page.Current = &Current{
		Weekday:     today.Weekday().String(),
		Date:        FormatDate(today),
		Location:    fmt.Sprintf("%s - %s", w.Name, w.Country),
		IconURL:     openweathermap.IconURLFromTemplate(opts.IconURLTemplate, w.Icon),
		Temperature: FormatTemperature(w.Temperature),
		Description: w.Description,
	}
	page.Details = &Details{
		UVIndex:    NotAvailable,
		Humidity:   fmt.Sprintf("%s%%", formatNumber(w.Humidity)),
		Wind:       fmt.Sprintf("%s m/s", formatNumber(w.WindSpeed)),
		Population: NotAvailable,
	}

	page.Forecast = make([]ForecastCard, 0, len(snap.Forecast))
	for _, entry := range snap.Forecast {
		page.Forecast = append(page.Forecast, ForecastCard{
			Day:         entry.Timestamp.Weekday().String(),
			Timestamp:   entry.Timestamp.Unix(),
			IconURL:     openweathermap.IconURLFromTemplate(opts.IconURLTemplate, entry.Icon),
			Temperature: FormatTemperature(entry.Temperature),
			Description: entry.Description,
		})
	}
	return page
}

// Round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatTemperature renders a Celsius value as a whole number, e.g. "23°C"
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", Round(celsius))
}

// FormatDate renders month/day/year without padding, e.g. "10/19/2026"
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
