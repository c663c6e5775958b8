package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/store"
)

// HousekeepingService periodically prunes old audit entries so the log does
// not grow without bound. The retention window is configurable; the report
// pages only ever look at recent history.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. Non-positive interval
// defaults to 1 hour, non-positive retention to 90 days.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}
	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started",
		"interval", s.Interval, "retention", s.Retention)
}

// Stop shuts down the worker and blocks until any in-progress prune finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.prune()

	for {
		select {
		case <-ticker.C:
			s.prune()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) prune() {
	ctx := context.Background()
	cutoff := time.Now().Add(-s.Retention)

	n, err := s.Store.Audit().PruneEntriesBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("audit prune failed", "err", err)
		return
	}
	if n > 0 {
		s.Logger.Info("pruned audit entries", "count", n, "cutoff", cutoff)
	}
}
