package reconciler

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"vehicle_sync/internal/domain"
)

type VehicleStore interface {
	UpsertBatch(ctx context.Context, vehicles []domain.Vehicle) (int, int, error)
	UpdatePrices(ctx context.Context, source domain.Source, updates []domain.PriceUpdate) (int, error)
	DeleteBatch(ctx context.Context, source domain.Source, sourceIDs []string) (int, error)
	MarkUnavailable(ctx context.Context, source domain.Source, sourceIDs []string) (int, error)
}

// OrderGuard reports which vehicles are still referenced by an open order.
type OrderGuard interface {
	ActiveOrderSourceIDs(ctx context.Context, source domain.Source, sourceIDs []string) (map[string]bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
