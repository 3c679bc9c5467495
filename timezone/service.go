package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the time zone of a coordinate
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	Location(latitude, longitude float64) (*time.Location, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared tzf-backed service.
// The finder holds the full polygon set in memory so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA name for the coordinates, e.g. "Asia/Kolkata"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// Location loads the *time.Location for the coordinates
func (s *service) Location(latitude, longitude float64) (*time.Location, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}
