package datasource

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCityNotFound is reported when the provider does not know the requested city
var ErrCityNotFound = errors.New("city not found")

// APIError is a non-200 answer from an upstream provider
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API error (status %d)", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// Is lets errors.Is match ErrCityNotFound on 404 answers
func (e *APIError) Is(target error) bool {
	return target == ErrCityNotFound && e.StatusCode == http.StatusNotFound
}
