package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"weather-dashboard/api"
	"weather-dashboard/config"
	"weather-dashboard/dashboard"
	"weather-dashboard/providers/openweathermap"
	"weather-dashboard/timezone"
	"weather-dashboard/view"
)

func main() {
	// Parse command line arguments
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	city := flag.String("city", "", "City to show on startup (overrides dashboard.defaultCity)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := cfg.NewLogger()

	// Weather provider
	client := openweathermap.NewClient(cfg.Provider.APIKey,
		openweathermap.WithBaseURL(cfg.Provider.BaseURL),
		openweathermap.WithTimeout(cfg.Provider.Timeout),
		openweathermap.WithLogger(logger),
	)

	// Forecast day grouping
	zone := dashboard.LocalWeekdays()
	if cfg.Dashboard.Weekdays == config.WeekdaysCity {
		tz, err := timezone.NewService()
		if err != nil {
			logger.Warn().Err(err).Msg("timezone lookup unavailable, using provider UTC offsets")
		}
		zone = dashboard.CityWeekdays(tz, logger)
	}

	orchestrator := dashboard.NewOrchestrator(client, client, zone, logger)
	dash := dashboard.New(orchestrator, logger)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}
	viewOpts := view.DefaultOptions()
	viewOpts.IconURLTemplate = cfg.Provider.IconURLTemplate

	server := api.NewServer(cfg.GetServerAddr(), dash, renderer, viewOpts, logger)

	// Initial city
	initial := cfg.Dashboard.DefaultCity
	if *city != "" {
		initial = *city
	}
	if _, ok := dash.Search(initial); !ok {
		logger.Fatal().Str("city", initial).Msg("initial city is blank")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopRefresh := dashboard.NewRefresher(dash, cfg.Dashboard.RefreshInterval, logger).Start(ctx)

	// Start the HTTP server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server failure
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	stopRefresh()
	dash.Close()
	logger.Info().Msg("shutdown complete")
}
