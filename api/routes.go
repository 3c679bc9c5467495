package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"weather-dashboard/view"
)

// HealthOutput is the health check response
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

// DashboardOutput is the current page model
type DashboardOutput struct {
	Body view.Page
}

// CityInput selects a new city
type CityInput struct {
	Body struct {
		City string `json:"city" minLength:"1" maxLength:"200" example:"Mumbai" doc:"City name, surrounding whitespace is ignored"`
	}
}

// CityOutput acknowledges a started fetch cycle
type CityOutput struct {
	Body struct {
		City       string `json:"city"`
		Generation uint64 `json:"generation" doc:"Fetch cycle number; results of older cycles are discarded"`
	}
}

// registerRoutes sets up all JSON endpoints
func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"health"},
	}, s.handleHealth)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Get the dashboard",
		Description: "Returns the loading, ready or unavailable page model for the selected city",
		Tags:        []string{"dashboard"},
	}, s.handleGetDashboard)

	huma.Register(s.api, huma.Operation{
		OperationID:   "select-city",
		Method:        http.MethodPost,
		Path:          "/api/city",
		Summary:       "Select a city",
		Description:   "Starts a new fetch cycle. Poll the dashboard until its status is no longer loading.",
		Tags:          []string{"dashboard"},
		DefaultStatus: http.StatusAccepted,
	}, s.handleSelectCity)
}

func (s *Server) handleHealth(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	return out, nil
}

func (s *Server) handleGetDashboard(_ context.Context, _ *struct{}) (*DashboardOutput, error) {
	return &DashboardOutput{Body: s.page()}, nil
}

func (s *Server) handleSelectCity(_ context.Context, input *CityInput) (*CityOutput, error) {
	gen, ok := s.dash.Search(input.Body.City)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("city must not be blank")
	}

	out := &CityOutput{}
	out.Body.City = strings.TrimSpace(input.Body.City)
	out.Body.Generation = gen
	return out, nil
}
