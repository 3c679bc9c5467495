package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"weather-dashboard/metrics"
	"weather-dashboard/models"
)

// Loader fetches the data for one cycle
type Loader interface {
	LoadWeather(ctx context.Context, city string) (models.CurrentWeather, []models.ForecastEntry, error)
}

// Dashboard owns the selected city and runs a fetch cycle every time it changes.
// Only the most recently started cycle may update the state.
type Dashboard struct {
	loader Loader
	state  *store
	logger zerolog.Logger
	now    func() time.Time

	ctx       context.Context
	stop      context.CancelFunc
	mu        sync.Mutex
	cancelRun context.CancelFunc
	wg        sync.WaitGroup

	staleLog rate.Sometimes
}

// New creates a dashboard. No fetch is started until SetCity or Search is called.
func New(loader Loader, logger zerolog.Logger) *Dashboard {
	ctx, stop := context.WithCancel(context.Background())
	return &Dashboard{
		loader:   loader,
		state:    newStore(),
		logger:   logger.With().Str("component", "dashboard").Logger(),
		now:      time.Now,
		ctx:      ctx,
		stop:     stop,
		staleLog: rate.Sometimes{First: 3, Interval: 10 * time.Second},
	}
}

// Search handles a submitted search box value. Surrounding whitespace is
// trimmed and blank input is ignored. It reports whether a new cycle started.
func (d *Dashboard) Search(input string) (uint64, bool) {
	city := strings.TrimSpace(input)
	if city == "" {
		return 0, false
	}
	return d.SetCity(city), true
}

// SetCity selects city and starts a fetch cycle for it. Any cycle still in
// flight is cancelled and its result will be discarded.
func (d *Dashboard) SetCity(city string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancelRun != nil {
		d.cancelRun()
	}
	ctx, cancel := context.WithCancel(d.ctx)
	d.cancelRun = cancel

	gen := d.state.begin(city, d.now())
	d.wg.Add(1)
	go d.run(ctx, cancel, gen, city)
	return gen
}

// Refresh re-runs the fetch for the current city. It does nothing before a city is set.
func (d *Dashboard) Refresh() (uint64, bool) {
	city, _ := d.state.latest()
	if city == "" {
		return 0, false
	}
	return d.SetCity(city), true
}

// Snapshot returns a copy of the current state
func (d *Dashboard) Snapshot() Snapshot {
	return d.state.snapshot()
}

// Wait blocks until every started cycle has finished
func (d *Dashboard) Wait() {
	d.wg.Wait()
}

// Close cancels in-flight cycles and waits for them to return
func (d *Dashboard) Close() {
	d.stop()
	d.wg.Wait()
}

func (d *Dashboard) run(ctx context.Context, cancel context.CancelFunc, gen uint64, city string) {
	defer d.wg.Done()
	defer cancel()

	log := d.logger.With().
		Str("cycle_id", uuid.NewString()).
		Uint64("generation", gen).
		Str("city", city).
		Logger()
	log.Debug().Msg("fetch cycle started")

	start := time.Now()
	weather, days, err := d.loader.LoadWeather(ctx, city)
	elapsed := time.Since(start)

	if err != nil {
		if !d.state.fail(gen, err, d.now()) {
			d.discard(log, err)
			return
		}
		metrics.RecordFetchCycle(metrics.OutcomeFailure, elapsed)
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("error fetching weather data")
		return
	}

	if !d.state.complete(gen, weather, days, d.now()) {
		d.discard(log, nil)
		return
	}
	metrics.RecordFetchCycle(metrics.OutcomeSuccess, elapsed)
	log.Info().
		Str("resolved", weather.Name).
		Int("days", len(days)).
		Dur("elapsed", elapsed).
		Msg("weather updated")
}

func (d *Dashboard) discard(log zerolog.Logger, err error) {
	metrics.RecordStaleResult()
	if errors.Is(err, context.Canceled) {
		log.Debug().Msg("superseded fetch cycle cancelled")
		return
	}
	d.staleLog.Do(func() {
		log.Warn().Err(err).Msg("discarding result from superseded fetch cycle")
	})
}
