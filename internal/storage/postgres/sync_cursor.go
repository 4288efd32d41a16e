package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"vehicle_sync/internal/domain"
)

const syncCursorColumns = `source, change_id, full_scan_page, last_sync_at, last_sync_status,
	last_sync_error, run_started_at, vehicles_added, vehicles_updated, vehicles_removed, errors_count`

type SyncCursorStore struct {
	db *sqlx.DB
}

func NewSyncCursorStore(db *sqlx.DB) *SyncCursorStore {
	return &SyncCursorStore{db: db}
}

func (s *SyncCursorStore) Get(ctx context.Context, source domain.Source) (*domain.SyncCursor, error) {
	var cursor domain.SyncCursor
	query := `SELECT ` + syncCursorColumns + ` FROM sync_cursors WHERE source = $1`

	err := GetExecutor(ctx, s.db).GetContext(ctx, &cursor, query, source)
	if err == sql.ErrNoRows {
		// never synced
		return &domain.SyncCursor{
			Source:         source,
			LastSyncStatus: domain.SyncIdle,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sync cursor: %w", err)
	}
	return &cursor, nil
}

// TryBeginRun flips the cursor to running in a single statement. It fails
// with domain.ErrRunInProgress while another run holds the row, unless that
// run started before staleBefore.
func (s *SyncCursorStore) TryBeginRun(ctx context.Context, source domain.Source, startedAt, staleBefore time.Time) (*domain.SyncCursor, error) {
	query := `
		INSERT INTO sync_cursors (source, last_sync_status, run_started_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (source) DO UPDATE SET
			last_sync_status = EXCLUDED.last_sync_status,
			run_started_at = EXCLUDED.run_started_at,
			last_sync_error = NULL
		WHERE sync_cursors.last_sync_status <> $2
			OR sync_cursors.run_started_at IS NULL
			OR sync_cursors.run_started_at < $4
		RETURNING ` + syncCursorColumns

	var cursor domain.SyncCursor
	err := GetExecutor(ctx, s.db).GetContext(ctx, &cursor, query, source, domain.SyncRunning, startedAt, staleBefore)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRunInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("begin sync run: %w", err)
	}
	return &cursor, nil
}

// SaveCheckpoint advances the watermark mid-run. Nil arguments leave the
// stored value untouched.
func (s *SyncCursorStore) SaveCheckpoint(ctx context.Context, source domain.Source, changeID *string, page *int) error {
	query := `
		UPDATE sync_cursors SET
			change_id = COALESCE($2, change_id),
			full_scan_page = COALESCE($3, full_scan_page)
		WHERE source = $1`

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, source, changeID, page); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

// Finish records the final state of a run and releases the running lock.
func (s *SyncCursorStore) Finish(ctx context.Context, cursor *domain.SyncCursor) error {
	query := `
		UPDATE sync_cursors SET
			change_id = COALESCE($2, change_id),
			full_scan_page = COALESCE($3, full_scan_page),
			last_sync_at = $4,
			last_sync_status = $5,
			last_sync_error = $6,
			run_started_at = NULL,
			vehicles_added = $7,
			vehicles_updated = $8,
			vehicles_removed = $9,
			errors_count = $10
		WHERE source = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		cursor.Source,
		cursor.ChangeID,
		cursor.FullScanPage,
		cursor.LastSyncAt,
		cursor.LastSyncStatus,
		cursor.LastSyncError,
		cursor.Added,
		cursor.Updated,
		cursor.Removed,
		cursor.Errors,
	)
	if err != nil {
		return fmt.Errorf("finish sync cursor: %w", err)
	}
	return nil
}
