package cleanup

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/image"
	"vehicle_sync/internal/reconciler"
)

type VehicleLister interface {
	ListVisible(ctx context.Context, source domain.Source, limit, offset int) ([]domain.Vehicle, error)
}

type CoverValidator interface {
	HasValidCover(v *domain.Vehicle) bool
}

// ImageFetcher is used to confirm that a cover still loads upstream.
type ImageFetcher interface {
	Fetch(ctx context.Context, raw string) (*image.Result, error)
}

type Remover interface {
	ApplyRemovals(ctx context.Context, source domain.Source, sourceIDs []string) reconciler.Result
}

type Snapshotter interface {
	RecordSnapshot(ctx context.Context) (*domain.VehicleCountHistory, error)
}
