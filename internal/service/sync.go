package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"vehicle_sync/internal/config"
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/reconciler"
)

// SyncService drives one source through a full or incremental run.
type SyncService struct {
	source      Source
	normalizer  Normalizer
	reconciler  Reconciler
	cursors     CursorStore
	logs        SyncLogStore
	vehicles    VehicleIndex
	snapshotter Snapshotter
	publisher   Publisher
	logger      *slog.Logger
	config      config.SyncConfig

	limiter *rate.Limiter
	running atomic.Bool
	now     func() time.Time
}

func NewSyncService(
	source Source,
	normalizer Normalizer,
	reconciler Reconciler,
	cursors CursorStore,
	logs SyncLogStore,
	vehicles VehicleIndex,
	snapshotter Snapshotter,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	limit := rate.Inf
	if cfg.PageDelay > 0 {
		limit = rate.Every(cfg.PageDelay)
	}

	return &SyncService{
		source:      source,
		normalizer:  normalizer,
		reconciler:  reconciler,
		cursors:     cursors,
		logs:        logs,
		vehicles:    vehicles,
		snapshotter: snapshotter,
		publisher:   publisher,
		logger:      logger.With("source", source.Name(), "platform", source.Platform()),
		config:      cfg,
		limiter:     rate.NewLimiter(limit, 1),
		now:         time.Now,
	}
}

// run is the mutable state of one in-flight sync.
type run struct {
	summary  *domain.SyncSummary
	cursor   *domain.SyncCursor
	deadline time.Time
	// calls counts upstream requests that returned, successful or not.
	calls int
}

func (r *run) record(res reconciler.Result) {
	r.summary.Added += res.Inserted
	r.summary.Updated += res.Updated
	r.summary.Removed += res.Removed
	r.summary.Unavailable += res.Unavailable
	r.summary.Errors += res.Failed
}

// Sync executes one run. Only one run per source may be active; a second
// caller gets domain.ErrRunInProgress. The returned summary is non-nil for
// every run that acquired the lock, including failed ones.
func (s *SyncService) Sync(ctx context.Context, opts domain.SyncOptions) (*domain.SyncSummary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer s.running.Store(false)

	opts = s.withDefaults(opts)
	startTime := s.now()
	name := s.source.Name()

	cursor, err := s.cursors.TryBeginRun(ctx, name, startTime, startTime.Add(-s.config.StaleRunAfter))
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}

	r := &run{
		cursor: cursor,
		summary: &domain.SyncSummary{
			RunID:     uuid.NewString(),
			Source:    name,
			Mode:      opts.Mode,
			Status:    domain.SyncRunning,
			StartedAt: startTime,
		},
	}
	if opts.TimeBudget > 0 {
		r.deadline = startTime.Add(opts.TimeBudget)
	}

	runLog := &domain.SyncLog{
		ID:        r.summary.RunID,
		Source:    name,
		Mode:      opts.Mode,
		Status:    domain.SyncRunning,
		StartedAt: startTime,
	}

	s.logger.Info("starting sync",
		"run_id", r.summary.RunID,
		"mode", opts.Mode,
		"max_pages", opts.MaxPages,
		"change_id", deref(cursor.ChangeID),
	)

	var runErr error
	if err := s.logs.Create(ctx, runLog); err != nil {
		runErr = fmt.Errorf("create sync log: %w", err)
	} else if opts.Mode == domain.ModeFull {
		runErr = s.runFull(ctx, r, opts)
	} else {
		runErr = s.runChanges(ctx, r, opts)
	}

	s.finish(context.WithoutCancel(ctx), r, runLog, runErr)

	if runErr != nil {
		return r.summary, fmt.Errorf("sync %s: %w", name, runErr)
	}
	return r.summary, nil
}

func (s *SyncService) withDefaults(opts domain.SyncOptions) domain.SyncOptions {
	if opts.Mode == "" {
		if mode, ok := domain.ParseSyncMode(s.config.Mode); ok {
			opts.Mode = mode
		} else {
			opts.Mode = domain.ModeChanges
		}
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = s.config.MaxPages
	}
	if opts.StartPage <= 0 {
		opts.StartPage = 1
	}
	if opts.TimeBudget <= 0 {
		opts.TimeBudget = s.config.TimeBudget
	}
	if !opts.RemoveStale {
		opts.RemoveStale = s.config.RemoveStale
	}
	return opts
}

func (s *SyncService) runFull(ctx context.Context, r *run, opts domain.SyncOptions) error {
	page := opts.StartPage
	consecutiveErrors := 0
	pageErrors := 0
	complete := false

	var seen map[string]struct{}
	if opts.RemoveStale {
		seen = make(map[string]struct{})
	}

	for fetched := 0; fetched < opts.MaxPages; fetched++ {
		if s.budgetExhausted(r) {
			r.summary.Partial = true
			s.logger.Warn("time budget exhausted, stopping", "page", page)
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for page %d: %w", page, err)
		}

		resp, err := s.source.ListOffers(ctx, page, opts.Filters)
		r.calls++
		if err != nil {
			if fatal := s.fatal(ctx, r, err); fatal != nil {
				return fatal
			}
			r.summary.Errors++
			pageErrors++
			consecutiveErrors++
			s.logger.Warn("page failed", "page", page, "error", err)
			if consecutiveErrors >= s.config.MaxConsecutivePageErrors {
				s.logger.Error("too many consecutive page errors, stopping", "page", page, "errors", consecutiveErrors)
				break
			}
			page++
			continue
		}
		consecutiveErrors = 0
		r.summary.Pages++

		vehicles := make([]domain.Vehicle, 0, len(resp.Offers))
		for _, offer := range resp.Offers {
			if seen != nil {
				seen[s.normalizer.SourceID(offer.InnerID)] = struct{}{}
			}
			vehicle, err := s.normalizer.Normalize(offer.InnerID, offer.Payload)
			if err != nil {
				r.summary.Errors++
				s.logger.Debug("skipping offer", "inner_id", offer.InnerID, "error", err)
				continue
			}
			vehicles = append(vehicles, *vehicle)
		}

		var res reconciler.Result
		if len(vehicles) > 0 {
			res = s.reconciler.ApplyUpserts(ctx, vehicles)
			r.record(res)
		}
		if res.Failed > 0 {
			pageErrors++
			s.logger.Warn("page writes failed", "page", page, "failed", res.Failed)
		}

		watermark := page
		r.cursor.FullScanPage = &watermark
		r.summary.Cursor = strconv.Itoa(watermark)
		if err := s.cursors.SaveCheckpoint(ctx, r.summary.Source, nil, &watermark); err != nil {
			s.logger.Warn("save checkpoint failed", "page", page, "error", err)
		}

		s.logger.Debug("page synced",
			"page", page,
			"offers", len(resp.Offers),
			"inserted", res.Inserted,
			"updated", res.Updated,
		)

		if resp.NextPage == nil {
			complete = true
			break
		}
		page = *resp.NextPage
	}

	if seen != nil && complete && pageErrors == 0 && r.summary.Errors == 0 &&
		opts.StartPage == 1 && opts.Filters == (domain.OfferFilters{}) {
		if err := s.removeStale(ctx, r, seen); err != nil {
			r.summary.Errors++
			s.logger.Error("stale removal failed", "error", err)
		}
	}
	return nil
}

// removeStale drops stored vehicles that a complete, unfiltered scan did not
// return. The guard in the reconciler still protects ordered vehicles.
func (s *SyncService) removeStale(ctx context.Context, r *run, seen map[string]struct{}) error {
	stored, err := s.vehicles.ListSourceIDs(ctx, r.summary.Source)
	if err != nil {
		return fmt.Errorf("list stored ids: %w", err)
	}

	var stale []string
	for _, id := range stored {
		if _, ok := seen[id]; !ok {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	s.logger.Info("removing stale vehicles", "count", len(stale))
	r.record(s.reconciler.ApplyRemovals(ctx, r.summary.Source, stale))
	return nil
}

func (s *SyncService) runChanges(ctx context.Context, r *run, opts domain.SyncOptions) error {
	changeID := opts.ChangeID
	if changeID == "" && opts.Since == nil {
		changeID = deref(r.cursor.ChangeID)
	}

	if changeID == "" {
		day := s.now().UTC()
		if opts.Since != nil {
			day = opts.Since.UTC()
		}
		id, err := s.source.ChangeIDForDate(ctx, day)
		r.calls++
		if err != nil {
			return fmt.Errorf("bootstrap change id: %w", err)
		}
		changeID = id
		r.cursor.ChangeID = &id
		s.logger.Info("bootstrapped change cursor", "date", day.Format(time.DateOnly), "change_id", changeID)
	}
	r.summary.Cursor = changeID

	for fetched := 0; fetched < opts.MaxPages; fetched++ {
		if s.budgetExhausted(r) {
			r.summary.Partial = true
			s.logger.Warn("time budget exhausted, stopping", "change_id", changeID)
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for changes %s: %w", changeID, err)
		}

		resp, err := s.source.ChangesSince(ctx, changeID)
		r.calls++
		if err != nil {
			if fatal := s.fatal(ctx, r, err); fatal != nil {
				return fatal
			}
			// The cursor cannot move past a page that was never read.
			r.summary.Errors++
			s.logger.Warn("changes page failed", "change_id", changeID, "error", err)
			break
		}
		r.summary.Pages++

		if len(resp.Changes) == 0 {
			break
		}

		if failed := s.applyChanges(ctx, r, resp.Changes); failed > 0 {
			s.logger.Warn("changes page writes failed, cursor kept", "change_id", changeID, "failed", failed)
			break
		}

		if resp.NextCursor == "" || resp.NextCursor == changeID {
			break
		}
		changeID = resp.NextCursor
		r.summary.Cursor = changeID
		r.cursor.ChangeID = &changeID
		if err := s.cursors.SaveCheckpoint(ctx, r.summary.Source, &changeID, nil); err != nil {
			s.logger.Warn("save checkpoint failed", "change_id", changeID, "error", err)
		}
	}
	return nil
}

type changeOp int

const (
	opUpsert changeOp = iota
	opPrice
	opRemove
)

// applyChanges writes one page of changes in stream order. Consecutive
// entries of the same kind are written together. It returns the number of
// records whose write failed.
func (s *SyncService) applyChanges(ctx context.Context, r *run, changes []domain.RawOffer) int {
	name := r.summary.Source
	failed := 0

	var (
		current  changeOp
		upserts  []domain.Vehicle
		prices   []domain.PriceUpdate
		removals []string
	)

	flush := func() {
		var res reconciler.Result
		switch {
		case len(upserts) > 0:
			res = s.reconciler.ApplyUpserts(ctx, upserts)
		case len(prices) > 0:
			res = s.reconciler.ApplyPriceUpdates(ctx, name, prices)
		case len(removals) > 0:
			res = s.reconciler.ApplyRemovals(ctx, name, removals)
		default:
			return
		}
		r.record(res)
		failed += res.Failed
		upserts, prices, removals = nil, nil, nil
	}

	for _, change := range changes {
		op, apply := s.classify(r, change)
		if apply == nil {
			continue
		}
		if op != current {
			flush()
			current = op
		}
		apply(&upserts, &prices, &removals)
	}
	flush()

	return failed
}

type applyFunc func(upserts *[]domain.Vehicle, prices *[]domain.PriceUpdate, removals *[]string)

// classify decides how a change entry is written. A nil applyFunc means the
// entry was rejected and already counted as an error.
func (s *SyncService) classify(r *run, change domain.RawOffer) (changeOp, applyFunc) {
	switch change.ChangeType {
	case domain.ChangeRemoved:
		id := s.normalizer.SourceID(change.InnerID)
		return opRemove, func(_ *[]domain.Vehicle, _ *[]domain.PriceUpdate, removals *[]string) {
			*removals = append(*removals, id)
		}
	case domain.ChangeChanged:
		if update, ok := s.normalizer.NormalizePriceChange(change.InnerID, change.Payload); ok {
			return opPrice, func(_ *[]domain.Vehicle, prices *[]domain.PriceUpdate, _ *[]string) {
				*prices = append(*prices, *update)
			}
		}
	}

	vehicle, err := s.normalizer.Normalize(change.InnerID, change.Payload)
	if err != nil {
		r.summary.Errors++
		s.logger.Debug("skipping change", "inner_id", change.InnerID, "type", change.ChangeType, "error", err)
		return opUpsert, nil
	}
	return opUpsert, func(upserts *[]domain.Vehicle, _ *[]domain.PriceUpdate, _ *[]string) {
		*upserts = append(*upserts, *vehicle)
	}
}

// fatal returns a non-nil error when an upstream failure must end the run.
func (s *SyncService) fatal(ctx context.Context, r *run, err error) error {
	switch {
	case r.calls == 1:
		return fmt.Errorf("first upstream call: %w", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return nil
}

func (s *SyncService) budgetExhausted(r *run) bool {
	return !r.deadline.IsZero() && !s.now().Before(r.deadline)
}

func (s *SyncService) finish(ctx context.Context, r *run, runLog *domain.SyncLog, runErr error) {
	endTime := s.now()
	summary := r.summary
	summary.Duration = endTime.Sub(summary.StartedAt)

	switch {
	case runErr != nil:
		summary.Status = domain.SyncFailed
		summary.FailureReason = runErr.Error()
	case summary.Errors > summary.Successes():
		summary.Status = domain.SyncFailed
		summary.FailureReason = fmt.Sprintf("%d errors exceed %d successes", summary.Errors, summary.Successes())
	default:
		summary.Status = domain.SyncSuccess
	}

	var failure *string
	if summary.FailureReason != "" {
		failure = &summary.FailureReason
	}

	cursor := r.cursor
	cursor.Source = summary.Source
	cursor.LastSyncAt = &endTime
	cursor.LastSyncStatus = summary.Status
	cursor.LastSyncError = failure
	cursor.RunStartedAt = nil
	cursor.Added = summary.Added
	cursor.Updated = summary.Updated
	cursor.Removed = summary.Removed
	cursor.Errors = summary.Errors
	if err := s.cursors.Finish(ctx, cursor); err != nil {
		s.logger.Error("finish cursor failed", "error", err)
	}

	runLog.Status = summary.Status
	runLog.EndedAt = &endTime
	runLog.Added = summary.Added
	runLog.Updated = summary.Updated
	runLog.Removed = summary.Removed
	runLog.Errors = summary.Errors
	runLog.ErrorMessage = failure
	if err := s.logs.Finish(ctx, runLog); err != nil {
		s.logger.Error("finish sync log failed", "error", err)
	}

	s.logger.Info("sync completed",
		"run_id", summary.RunID,
		"status", summary.Status,
		"added", summary.Added,
		"updated", summary.Updated,
		"removed", summary.Removed,
		"unavailable", summary.Unavailable,
		"errors", summary.Errors,
		"pages", summary.Pages,
		"partial", summary.Partial,
		"duration", summary.Duration,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishRunSummary(ctx, summary); err != nil {
			s.logger.Warn("publish run summary failed", "error", err)
		}
	}

	if s.snapshotter != nil {
		if _, err := s.snapshotter.RecordSnapshot(ctx); err != nil {
			s.logger.Warn("record snapshot failed", "error", err)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
