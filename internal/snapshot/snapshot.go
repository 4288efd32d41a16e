package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vehicle_sync/internal/domain"
)

const DefaultBackfillDays = 90

// Snapshotter records one row of vehicle counts per calendar day (UTC).
type Snapshotter struct {
	counts  CountStore
	history HistoryStore
	changes ChangeLog
	logger  *slog.Logger
	now     func() time.Time
}

func New(counts CountStore, history HistoryStore, changes ChangeLog, logger *slog.Logger) *Snapshotter {
	return &Snapshotter{
		counts:  counts,
		history: history,
		changes: changes,
		logger:  logger.With("component", "snapshot"),
		now:     time.Now,
	}
}

// RecordSnapshot upserts today's row with the current counts. Calling it
// again on the same day overwrites that day's row.
func (s *Snapshotter) RecordSnapshot(ctx context.Context) (*domain.VehicleCountHistory, error) {
	now := s.now().UTC()

	counts, err := s.counts.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	row := &domain.VehicleCountHistory{
		Date:          startOfDay(now),
		RecordedAt:    now,
		VehicleCounts: *counts,
	}
	if err := s.history.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("record snapshot: %w", err)
	}

	s.logger.Info("recorded vehicle count snapshot",
		"date", row.Date.Format(time.DateOnly),
		"total", row.Total,
		"korea", row.Korea,
		"china", row.China,
		"dubai", row.Dubai,
	)
	return row, nil
}

// Backfill reconstructs the last days of history from today's counts by
// walking per-day net changes of the run log backwards. Counts never go
// below zero. Only total and per-source columns are written.
func (s *Snapshotter) Backfill(ctx context.Context, days int) ([]domain.VehicleCountHistory, error) {
	if days <= 0 {
		days = DefaultBackfillDays
	}
	now := s.now().UTC()
	today := startOfDay(now)

	counts, err := s.counts.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	changes, err := s.changes.DailyNetChanges(ctx, today.AddDate(0, 0, -(days-1)))
	if err != nil {
		return nil, fmt.Errorf("load run history: %w", err)
	}

	byDay := make(map[time.Time][]domain.DailyNetChange)
	for _, c := range changes {
		day := startOfDay(c.Day.UTC())
		byDay[day] = append(byDay[day], c)
	}

	running := &tally{
		total: counts.Total,
		groups: map[domain.Source]int{
			domain.SourceKorea: counts.Korea,
			domain.SourceChina: counts.China,
			domain.SourceDubai: counts.Dubai,
		},
	}
	rows := make([]domain.VehicleCountHistory, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		rows = append(rows, domain.VehicleCountHistory{
			Date:       day,
			RecordedAt: now,
			VehicleCounts: domain.VehicleCounts{
				Total: running.total,
				Korea: running.groups[domain.SourceKorea],
				China: running.groups[domain.SourceChina],
				Dubai: running.groups[domain.SourceDubai],
			},
		})
		running.rewind(byDay[day])
	}

	if err := s.history.UpsertSourceCounts(ctx, rows); err != nil {
		return nil, fmt.Errorf("store backfill: %w", err)
	}

	s.logger.Info("backfilled vehicle count history", "days", days, "run_days", len(byDay))
	return rows, nil
}

type tally struct {
	total  int
	groups map[domain.Source]int
}

// rewind turns end-of-day counts into the counts at the end of the previous
// day.
func (t *tally) rewind(changes []domain.DailyNetChange) {
	for _, c := range changes {
		net := c.Added - c.Removed
		t.total -= net
		if group, ok := domain.GroupOf(c.Source); ok {
			t.groups[group] -= net
		}
	}

	t.total = max(0, t.total)
	for group, n := range t.groups {
		t.groups[group] = max(0, n)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
