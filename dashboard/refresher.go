package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Refresher periodically re-fetches the dashboard's current city
type Refresher struct {
	dash     *Dashboard
	interval time.Duration
	logger   zerolog.Logger
}

// NewRefresher creates a refresher. An interval <= 0 disables it.
func NewRefresher(dash *Dashboard, interval time.Duration, logger zerolog.Logger) *Refresher {
	return &Refresher{
		dash:     dash,
		interval: interval,
		logger:   logger.With().Str("component", "refresher").Logger(),
	}
}

// Start begins refreshing on a ticker.
// The returned function stops the refresher and waits for it to exit.
func (r *Refresher) Start(ctx context.Context) func() {
	if r.interval <= 0 {
		return func() {}
	}

	refreshCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.loop(refreshCtx)
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

func (r *Refresher) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("periodic refresh enabled")
	for {
		select {
		case <-ticker.C:
			if gen, ok := r.dash.Refresh(); ok {
				r.logger.Debug().Uint64("generation", gen).Msg("refresh triggered")
			}
		case <-ctx.Done():
			return
		}
	}
}
