package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/reconciler"
)

// Source is one upstream market feed.
type Source interface {
	Name() domain.Source
	Platform() string
	ListOffers(ctx context.Context, page int, filters domain.OfferFilters) (*domain.OfferPage, error)
	ChangesSince(ctx context.Context, changeID string) (*domain.ChangePage, error)
	ChangeIDForDate(ctx context.Context, date time.Time) (string, error)
	OfferByID(ctx context.Context, innerID string) (json.RawMessage, error)
	OfferByURL(ctx context.Context, listingURL string) (json.RawMessage, error)
}

// Normalizer maps one market's raw payloads to canonical records. It must
// not perform I/O.
type Normalizer interface {
	SourceID(innerID string) string
	Normalize(innerID string, payload json.RawMessage) (*domain.Vehicle, error)
	NormalizePriceChange(innerID string, payload json.RawMessage) (*domain.PriceUpdate, bool)
}

type Reconciler interface {
	ApplyUpserts(ctx context.Context, records []domain.Vehicle) reconciler.Result
	ApplyPriceUpdates(ctx context.Context, source domain.Source, updates []domain.PriceUpdate) reconciler.Result
	ApplyRemovals(ctx context.Context, source domain.Source, sourceIDs []string) reconciler.Result
}

type CursorStore interface {
	Get(ctx context.Context, source domain.Source) (*domain.SyncCursor, error)
	TryBeginRun(ctx context.Context, source domain.Source, startedAt, staleBefore time.Time) (*domain.SyncCursor, error)
	SaveCheckpoint(ctx context.Context, source domain.Source, changeID *string, page *int) error
	Finish(ctx context.Context, cursor *domain.SyncCursor) error
}

type SyncLogStore interface {
	Create(ctx context.Context, log *domain.SyncLog) error
	Finish(ctx context.Context, log *domain.SyncLog) error
	Latest(ctx context.Context, source domain.Source) (*domain.SyncLog, error)
}

// VehicleIndex lists what is stored for a source, used for stale removal.
type VehicleIndex interface {
	ListSourceIDs(ctx context.Context, source domain.Source) ([]string, error)
}

type Snapshotter interface {
	RecordSnapshot(ctx context.Context) (*domain.VehicleCountHistory, error)
}

type Publisher interface {
	PublishRunSummary(ctx context.Context, summary *domain.SyncSummary) error
}

// Runner is one source's sync entry point.
type Runner interface {
	Sync(ctx context.Context, opts domain.SyncOptions) (*domain.SyncSummary, error)
}
