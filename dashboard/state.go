package dashboard

import (
	"sync"
	"time"

	"weather-dashboard/models"
)

// Status is the branch the view renders for a snapshot
type Status int

const (
	// StatusLoading means the latest fetch cycle is still running
	StatusLoading Status = iota
	// StatusReady means current weather is available
	StatusReady
	// StatusUnavailable means the latest cycle failed or nothing was fetched yet
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "unavailable"
	}
}

// Snapshot is a read-only copy of the dashboard state
type Snapshot struct {
	City       string
	Generation uint64
	Loading    bool
	Weather    *models.CurrentWeather
	Forecast   []models.ForecastEntry
	Err        error
	UpdatedAt  time.Time
}

// Status reports which of the three view branches applies
func (s Snapshot) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Weather != nil:
		return StatusReady
	default:
		return StatusUnavailable
	}
}

// store holds the mutable dashboard state. Only the transition methods write to it.
type store struct {
	mu         sync.RWMutex
	city       string
	generation uint64
	loading    bool
	weather    *models.CurrentWeather
	forecast   []models.ForecastEntry
	err        error
	updated    time.Time
}

func newStore() *store {
	return &store{}
}

// begin starts a new fetch cycle for city and returns its generation.
// Data from the previous cycle is dropped so it is never shown under the loading indicator.
func (s *store) begin(city string, now time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.city = city
	s.loading = true
	s.weather = nil
	s.forecast = nil
	s.err = nil
	s.updated = now
	return s.generation
}

// complete applies a successful result. It reports false when gen is stale.
func (s *store) complete(gen uint64, weather models.CurrentWeather, forecast []models.ForecastEntry, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.loading = false
	s.weather = &weather
	s.forecast = append([]models.ForecastEntry(nil), forecast...)
	s.err = nil
	s.updated = now
	return true
}

// fail applies a failed result. It reports false when gen is stale.
func (s *store) fail(gen uint64, err error, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.loading = false
	s.weather = nil
	s.forecast = nil
	s.err = err
	s.updated = now
	return true
}

func (s *store) latest() (string, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.city, s.generation
}

func (s *store) snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		City:       s.city,
		Generation: s.generation,
		Loading:    s.loading,
		Err:        s.err,
		UpdatedAt:  s.updated,
	}
	if s.weather != nil {
		w := *s.weather
		snap.Weather = &w
	}
	if s.forecast != nil {
		snap.Forecast = append([]models.ForecastEntry(nil), s.forecast...)
	}
	return snap
}
