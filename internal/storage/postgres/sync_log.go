package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"vehicle_sync/internal/domain"
)

type SyncLogStore struct {
	db *sqlx.DB
}

func NewSyncLogStore(db *sqlx.DB) *SyncLogStore {
	return &SyncLogStore{db: db}
}

func (s *SyncLogStore) Create(ctx context.Context, log *domain.SyncLog) error {
	query := `
		INSERT INTO sync_logs (id, source, mode, status, started_at)
		VALUES (:id, :source, :mode, :status, :started_at)`

	if _, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, log); err != nil {
		return fmt.Errorf("create sync log: %w", err)
	}
	return nil
}

func (s *SyncLogStore) Finish(ctx context.Context, log *domain.SyncLog) error {
	query := `
		UPDATE sync_logs SET
			status = :status,
			ended_at = :ended_at,
			vehicles_added = :vehicles_added,
			vehicles_updated = :vehicles_updated,
			vehicles_removed = :vehicles_removed,
			errors_count = :errors_count,
			error_message = :error_message
		WHERE id = :id`

	if _, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, log); err != nil {
		return fmt.Errorf("finish sync log: %w", err)
	}
	return nil
}

// Latest returns the most recent run of a source, or nil if it never ran.
func (s *SyncLogStore) Latest(ctx context.Context, source domain.Source) (*domain.SyncLog, error) {
	var log domain.SyncLog
	err := GetExecutor(ctx, s.db).GetContext(ctx, &log,
		`SELECT * FROM sync_logs WHERE source = $1 ORDER BY started_at DESC LIMIT 1`, source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest sync log: %w", err)
	}
	return &log, nil
}

// DailyNetChanges sums added and removed counts per UTC day and source for
// runs started at or after since.
func (s *SyncLogStore) DailyNetChanges(ctx context.Context, since time.Time) ([]domain.DailyNetChange, error) {
	query := `
		SELECT
			date_trunc('day', started_at AT TIME ZONE 'UTC') AS day,
			source,
			COALESCE(SUM(vehicles_added), 0) AS added,
			COALESCE(SUM(vehicles_removed), 0) AS removed
		FROM sync_logs
		WHERE started_at >= $1
		GROUP BY 1, 2
		ORDER BY 1 DESC`

	var changes []domain.DailyNetChange
	if err := GetExecutor(ctx, s.db).SelectContext(ctx, &changes, query, since); err != nil {
		return nil, fmt.Errorf("daily net changes: %w", err)
	}
	return changes, nil
}
