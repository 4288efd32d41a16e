package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
)

const (
	DefaultPageSize    = 100
	DefaultConcurrency = 10
)

type Config struct {
	PageSize    int
	Concurrency int
}

// Cleaner removes vehicles whose cover image can no longer be shown. Writes
// go through the reconciler, so vehicles with open orders are only marked
// unavailable.
type Cleaner struct {
	vehicles    VehicleLister
	covers      CoverValidator
	fetcher     ImageFetcher
	remover     Remover
	snapshots   Snapshotter
	pageSize    int
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
	running     atomic.Bool
}

// New builds a Cleaner. fetcher may be nil, in which case reachability
// checks are skipped.
func New(
	vehicles VehicleLister,
	covers CoverValidator,
	fetcher ImageFetcher,
	remover Remover,
	snapshots Snapshotter,
	cfg Config,
	logger *slog.Logger,
) *Cleaner {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Cleaner{
		vehicles:    vehicles,
		covers:      covers,
		fetcher:     fetcher,
		remover:     remover,
		snapshots:   snapshots,
		pageSize:    cfg.PageSize,
		concurrency: cfg.Concurrency,
		logger:      logger.With("component", "image_cleanup"),
		now:         time.Now,
	}
}

// Run walks the visible vehicles page by page and collects those whose cover
// is expired, missing or, when asked, no longer served upstream. Removals
// are applied after the walk so offsets stay stable. When the time budget
// runs out the walk stops and what was found so far is still removed.
func (c *Cleaner) Run(ctx context.Context, opts domain.CleanupOptions) (*domain.CleanupSummary, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, domain.ErrCleanupInProgress
	}
	defer c.running.Store(false)

	start := c.now()
	summary := &domain.CleanupSummary{
		Source:    opts.Source,
		DryRun:    opts.DryRun,
		StartedAt: start.UTC(),
	}
	logger := c.logger.With("source", opts.Source, "dry_run", opts.DryRun)

	var deadline time.Time
	if opts.TimeBudget > 0 {
		deadline = start.Add(opts.TimeBudget)
	}

	checkUpstream := opts.CheckReachability && c.fetcher != nil
	var pool pond.Pool
	if checkUpstream {
		pool = pond.NewPool(c.concurrency, pond.WithContext(ctx))
		defer pool.StopAndWait()
	}

	invalid := make(map[domain.Source][]string)
	offset := 0
	for {
		if !deadline.IsZero() && !c.now().Before(deadline) {
			summary.Partial = true
			logger.Warn("time budget exhausted, stopping scan", "scanned", summary.Scanned)
			break
		}

		page, err := c.vehicles.ListVisible(ctx, opts.Source, c.pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("list vehicles at offset %d: %w", offset, err)
		}
		summary.Scanned += len(page)
		offset += len(page)

		bad, unreachable := c.checkPage(ctx, pool, page)
		summary.Unreachable += unreachable
		for _, v := range bad {
			invalid[v.Source] = append(invalid[v.Source], v.SourceID)
			summary.Invalid++
		}

		if len(page) < c.pageSize {
			break
		}
	}

	if !opts.DryRun && summary.Invalid > 0 {
		for _, source := range slices.Sorted(maps.Keys(invalid)) {
			res := c.remover.ApplyRemovals(ctx, source, invalid[source])
			summary.Removed += res.Removed
			summary.Unavailable += res.Unavailable
			summary.Failed += res.Failed
		}

		if summary.Removed+summary.Unavailable > 0 && c.snapshots != nil {
			if _, err := c.snapshots.RecordSnapshot(ctx); err != nil {
				logger.Warn("failed to record count snapshot", "error", err)
			}
		}
	}

	summary.Duration = c.now().Sub(start)
	logger.Info("image cleanup finished",
		"scanned", summary.Scanned,
		"invalid", summary.Invalid,
		"unreachable", summary.Unreachable,
		"removed", summary.Removed,
		"unavailable", summary.Unavailable,
		"failed", summary.Failed,
		"partial", summary.Partial,
		"duration", summary.Duration,
	)
	return summary, nil
}

// checkPage returns the vehicles of one page whose cover fails. A nil pool
// means covers are only checked for expiry.
func (c *Cleaner) checkPage(ctx context.Context, pool pond.Pool, page []domain.Vehicle) ([]domain.Vehicle, int) {
	failed := make([]bool, len(page))
	gone := make([]bool, len(page))
	var tasks []pond.Task

	for i := range page {
		if !c.covers.HasValidCover(&page[i]) {
			failed[i] = true
			continue
		}
		if pool == nil {
			continue
		}
		cover := page[i].FirstImage()
		tasks = append(tasks, pool.Submit(func() {
			gone[i] = c.unreachable(ctx, cover)
		}))
	}
	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			c.logger.Warn("cover check did not complete", "error", err)
		}
	}

	var bad []domain.Vehicle
	unreachable := 0
	for i := range page {
		if gone[i] {
			unreachable++
		}
		if failed[i] || gone[i] {
			bad = append(bad, page[i])
		}
	}
	return bad, unreachable
}

// unreachable reports whether the image host definitively refuses the
// cover. Transient failures and hosts the proxy does not serve count as
// reachable.
func (c *Cleaner) unreachable(ctx context.Context, raw string) bool {
	res, err := c.fetcher.Fetch(ctx, raw)
	if err == nil {
		_ = res.Close()
		return false
	}

	if errors.Is(err, domain.ErrImageExpired) {
		return true
	}
	var statusErr *image.UpstreamStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusForbidden, http.StatusNotFound, http.StatusGone:
			return true
		}
	}
	return false
}
