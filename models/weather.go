package models

import (
	"time"
)

// Coordinates is a geographic position as reported by the provider
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather represents the current conditions for a city
type CurrentWeather struct {
	Name        string      `json:"name"`        // city name as resolved by the provider
	Country     string      `json:"country"`     // ISO country code
	Temperature float64     `json:"temperature"` // in Celsius
	Humidity    float64     `json:"humidity"`    // percentage
	WindSpeed   float64     `json:"windSpeed"`   // in m/s
	Description string      `json:"description"` // short text description
	Icon        string      `json:"icon"`        // provider icon code
	Coord       Coordinates `json:"coord"`
	Timestamp   time.Time   `json:"timestamp"` // observation time
}
