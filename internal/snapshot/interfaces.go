package snapshot

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"vehicle_sync/internal/domain"
)

type CountStore interface {
	Counts(ctx context.Context) (*domain.VehicleCounts, error)
}

type HistoryStore interface {
	Upsert(ctx context.Context, h *domain.VehicleCountHistory) error
	UpsertSourceCounts(ctx context.Context, rows []domain.VehicleCountHistory) error
}

type ChangeLog interface {
	DailyNetChanges(ctx context.Context, since time.Time) ([]domain.DailyNetChange, error)
}
