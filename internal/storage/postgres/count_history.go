package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"vehicle_sync/internal/domain"
)

type CountHistoryStore struct {
	db *sqlx.DB
}

func NewCountHistoryStore(db *sqlx.DB) *CountHistoryStore {
	return &CountHistoryStore{db: db}
}

// Upsert writes the full row for one day, replacing any earlier snapshot.
func (s *CountHistoryStore) Upsert(ctx context.Context, h *domain.VehicleCountHistory) error {
	query := `
		INSERT INTO vehicle_count_history (
			date, recorded_at, total_count, korea_count, china_count, dubai_count,
			available_count, reserved_count, sold_count, unavailable_count
		) VALUES (
			:date, :recorded_at, :total_count, :korea_count, :china_count, :dubai_count,
			:available_count, :reserved_count, :sold_count, :unavailable_count
		)
		ON CONFLICT (date) DO UPDATE SET
			recorded_at = EXCLUDED.recorded_at,
			total_count = EXCLUDED.total_count,
			korea_count = EXCLUDED.korea_count,
			china_count = EXCLUDED.china_count,
			dubai_count = EXCLUDED.dubai_count,
			available_count = EXCLUDED.available_count,
			reserved_count = EXCLUDED.reserved_count,
			sold_count = EXCLUDED.sold_count,
			unavailable_count = EXCLUDED.unavailable_count`

	if _, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, h); err != nil {
		return fmt.Errorf("upsert count history: %w", err)
	}
	return nil
}

// UpsertSourceCounts writes reconstructed rows. Only the total and per-source
// columns are touched; status counts are not derivable from run logs.
func (s *CountHistoryStore) UpsertSourceCounts(ctx context.Context, rows []domain.VehicleCountHistory) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO vehicle_count_history (date, recorded_at, total_count, korea_count, china_count, dubai_count)
		VALUES (:date, :recorded_at, :total_count, :korea_count, :china_count, :dubai_count)
		ON CONFLICT (date) DO UPDATE SET
			recorded_at = EXCLUDED.recorded_at,
			total_count = EXCLUDED.total_count,
			korea_count = EXCLUDED.korea_count,
			china_count = EXCLUDED.china_count,
			dubai_count = EXCLUDED.dubai_count`

	exec := GetExecutor(ctx, s.db)
	for i := range rows {
		if _, err := sqlx.NamedExecContext(ctx, exec, query, &rows[i]); err != nil {
			return fmt.Errorf("upsert backfilled counts for %s: %w", rows[i].Date.Format(time.DateOnly), err)
		}
	}
	return nil
}

func (s *CountHistoryStore) ListSince(ctx context.Context, since time.Time) ([]domain.VehicleCountHistory, error) {
	query := `
		SELECT date, recorded_at, total_count, korea_count, china_count, dubai_count,
			available_count, reserved_count, sold_count, unavailable_count
		FROM vehicle_count_history
		WHERE date >= $1
		ORDER BY date DESC`

	var rows []domain.VehicleCountHistory
	if err := GetExecutor(ctx, s.db).SelectContext(ctx, &rows, query, since); err != nil {
		return nil, fmt.Errorf("list count history: %w", err)
	}
	return rows, nil
}
