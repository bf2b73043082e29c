// Package refresh runs the dashboard's auto-refresh as a background
// task: a fixed-interval ticker recomputes the unfiltered dashboard
// view and publishes it as an immutable snapshot, instead of a render
// loop sleeping in the request path.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"feedback-server/services/feedback-api/internal/domain/feedback"
	"feedback-server/services/feedback-api/internal/infrastructure/metrics"
)

// Refresher periodically recomputes the dashboard snapshot.
type Refresher struct {
	service  feedback.Service
	interval time.Duration
	log      zerolog.Logger

	mu       sync.RWMutex
	snapshot *feedback.DashboardView

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewRefresher constructs the refresher.
func NewRefresher(service feedback.Service, interval time.Duration, log zerolog.Logger) *Refresher {
	return &Refresher{
		service:  service,
		interval: interval,
		log:      log.With().Str("component", "refresher").Logger(),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the refresh loop. The first snapshot is computed
// immediately so /dashboard/live never serves a nil view for long.
func (r *Refresher) Start(ctx context.Context) {
	r.log.Info().Dur("interval", r.interval).Msg("starting dashboard refresher")

	go func() {
		defer close(r.done)

		r.refresh(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.log.Info().Msg("refresher stopped by context")
				return
			case <-r.stopChan:
				r.log.Info().Msg("refresher stopped")
				return
			case <-ticker.C:
				r.refresh(ctx)
			}
		}
	}()
}

// Stop terminates the refresh loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
	<-r.done
}

// Snapshot returns the latest published view, or nil when none has
// been produced yet.
func (r *Refresher) Snapshot() *feedback.DashboardView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Refresher) refresh(ctx context.Context) {
	view, err := r.service.Dashboard(ctx, nil)
	if err != nil {
		// Dashboard already degrades read failures internally; an
		// error here means something unexpected. Keep the last good
		// snapshot.
		metrics.SnapshotRefreshesTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).Msg("snapshot refresh failed")
		return
	}

	r.mu.Lock()
	r.snapshot = view
	r.mu.Unlock()

	metrics.SnapshotRefreshesTotal.WithLabelValues("ok").Inc()
	r.log.Debug().Int64("records", view.Total).Msg("snapshot refreshed")
}
