package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"weather-dashboard/dashboard"
	"weather-dashboard/metrics"
	"weather-dashboard/view"
)

// Server serves the dashboard page, its JSON API and metrics
type Server struct {
	dash     *dashboard.Dashboard
	renderer *view.Renderer
	viewOpts view.Options
	logger   zerolog.Logger
	now      func() time.Time

	router chi.Router
	api    huma.API
	server *http.Server
}

// NewServer creates a new API server listening on addr
func NewServer(addr string, dash *dashboard.Dashboard, renderer *view.Renderer, viewOpts view.Options, logger zerolog.Logger) *Server {
	s := &Server{
		dash:     dash,
		renderer: renderer,
		viewOpts: viewOpts,
		logger:   logger.With().Str("component", "api").Logger(),
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// HTML page
	r.Get("/", s.handleIndex)
	r.Post("/search", s.handleSearch)

	// Prometheus
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// JSON API
	config := huma.DefaultConfig("Weather Dashboard API", "1.0.0")
	config.Info.Description = "Current conditions and a daily forecast for the selected city"
	s.api = humachi.New(r, config)
	s.registerRoutes()

	s.router = r
	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving and blocks until the server stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) page() view.Page {
	return view.Build(s.dash.Snapshot(), s.now(), s.viewOpts)
}
