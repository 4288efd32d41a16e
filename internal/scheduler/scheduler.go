package scheduler

//go:generate mockgen -source=scheduler.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"vehicle_sync/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sources() []domain.Source
	RunSync(ctx context.Context, source domain.Source, mode domain.SyncMode, opts domain.SyncOptions) (*domain.SyncSummary, error)
}

// Cleaner prunes vehicles whose cover image can no longer be shown.
type Cleaner interface {
	Run(ctx context.Context, opts domain.CleanupOptions) (*domain.CleanupSummary, error)
}

type Scheduler struct {
	syncer     Syncer
	mode       domain.SyncMode
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger

	cleaner         Cleaner
	cleanupInterval time.Duration
	cleanupOpts     domain.CleanupOptions
}

func NewScheduler(syncer Syncer, mode domain.SyncMode, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = interval
	}
	return &Scheduler{
		syncer:     syncer,
		mode:       mode,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// WithCleanup adds a cover image cleanup on its own interval. Cleanup and
// sync ticks never overlap.
func (s *Scheduler) WithCleanup(cleaner Cleaner, interval time.Duration, opts domain.CleanupOptions) *Scheduler {
	s.cleaner = cleaner
	s.cleanupInterval = interval
	s.cleanupOpts = opts
	return s
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"mode", s.mode,
		"sources", s.syncer.Sources(),
		"cleanup", s.cleaner != nil,
	)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var cleanupTick <-chan time.Time
	if s.cleaner != nil && s.cleanupInterval > 0 {
		cleanupTicker := time.NewTicker(s.cleanupInterval)
		defer cleanupTicker.Stop()
		cleanupTick = cleanupTicker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-cleanupTick:
			s.RunCleanup(ctx)
		}
	}
}

// RunOnce syncs every source concurrently and waits for all of them. A
// failing source does not cancel the others.
func (s *Scheduler) RunOnce(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	var g errgroup.Group
	for _, source := range s.syncer.Sources() {
		g.Go(func() error {
			s.runSync(syncCtx, source)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Scheduler) runSync(ctx context.Context, source domain.Source) {
	logger := s.logger.With("source", source)

	summary, err := s.syncer.RunSync(ctx, source, s.mode, domain.SyncOptions{})
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		logger.Info("sync skipped, previous run still active")
	case err != nil:
		logger.Error("sync failed", "error", err)
	case summary != nil && summary.Status == domain.SyncFailed:
		logger.Warn("sync finished with failures", "reason", summary.FailureReason)
	}
}

// RunCleanup runs one cover image cleanup if one is configured.
func (s *Scheduler) RunCleanup(ctx context.Context) {
	if s.cleaner == nil {
		return
	}

	summary, err := s.cleaner.Run(ctx, s.cleanupOpts)
	switch {
	case errors.Is(err, domain.ErrCleanupInProgress):
		s.logger.Info("cleanup skipped, previous run still active")
	case err != nil:
		s.logger.Error("cleanup failed", "error", err)
	case summary.Failed > 0:
		s.logger.Warn("cleanup finished with failed batches", "failed", summary.Failed)
	}
}
