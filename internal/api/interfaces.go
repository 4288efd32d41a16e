package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
)

type SyncManager interface {
	RunSync(ctx context.Context, source domain.Source, mode domain.SyncMode, opts domain.SyncOptions) (*domain.SyncSummary, error)
	GetSyncStatus(ctx context.Context, source domain.Source) (*domain.SyncStatusReport, error)
	FetchOffer(ctx context.Context, source domain.Source, innerID string) (*domain.Vehicle, error)
	FetchOfferByURL(ctx context.Context, source domain.Source, listingURL string) (*domain.Vehicle, error)
}

type ImageProxy interface {
	Fetch(ctx context.Context, raw string) (*image.Result, error)
}

type ImageLoader interface {
	Load(ctx context.Context, raw string) *image.Image
}

type ImageValidator interface {
	Classify(raw string) (image.Classification, error)
	IsValid(raw string) bool
	HasValidCover(v *domain.Vehicle) bool
}

type CountSnapshotter interface {
	RecordSnapshot(ctx context.Context) (*domain.VehicleCountHistory, error)
	Backfill(ctx context.Context, days int) ([]domain.VehicleCountHistory, error)
}

type CountHistoryReader interface {
	ListSince(ctx context.Context, since time.Time) ([]domain.VehicleCountHistory, error)
}

type VehicleReader interface {
	ListVisible(ctx context.Context, source domain.Source, limit, offset int) ([]domain.Vehicle, error)
}

type ImageCleaner interface {
	Run(ctx context.Context, opts domain.CleanupOptions) (*domain.CleanupSummary, error)
}
