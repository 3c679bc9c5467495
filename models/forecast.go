package models

import (
	"time"
)

// ForecastEntry is a single forecast point at a specific time
type ForecastEntry struct {
	Timestamp   time.Time `json:"timestamp"`   // time this forecast is for
	Temperature float64   `json:"temperature"` // in Celsius
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // provider icon code
}

// ForecastData is the raw forecast list for a city, in provider order
type ForecastData struct {
	City           string          `json:"city"`
	Country        string          `json:"country"`
	Coord          Coordinates     `json:"coord"`
	TimezoneOffset int             `json:"timezoneOffset"` // seconds east of UTC
	Entries        []ForecastEntry `json:"entries"`
}
