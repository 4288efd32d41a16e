package reconciler

import (
	"context"
	"fmt"
	"log/slog"

	"vehicle_sync/internal/domain"
)

const DefaultBatchSize = 100

// Result aggregates the outcome of one apply call. Failed counts records
// that were part of a batch that could not be written.
type Result struct {
	Inserted    int
	Updated     int
	Removed     int
	Unavailable int
	Failed      int
	Errors      []error
}

// Written is the number of records durably applied.
func (r *Result) Written() int {
	return r.Inserted + r.Updated + r.Removed + r.Unavailable
}

func (r *Result) Add(other Result) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
	r.Removed += other.Removed
	r.Unavailable += other.Unavailable
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}

// Reconciler is the only writer of vehicle rows.
type Reconciler struct {
	vehicles  VehicleStore
	orders    OrderGuard
	txManager TransactionManager
	batchSize int
	logger    *slog.Logger
}

func New(
	vehicles VehicleStore,
	orders OrderGuard,
	txManager TransactionManager,
	batchSize int,
	logger *slog.Logger,
) *Reconciler {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Reconciler{
		vehicles:  vehicles,
		orders:    orders,
		txManager: txManager,
		batchSize: batchSize,
		logger:    logger,
	}
}

// ApplyUpserts writes records in batches keyed by (source, source_id). A
// failing batch is counted and skipped; later batches still run.
func (r *Reconciler) ApplyUpserts(ctx context.Context, records []domain.Vehicle) Result {
	var result Result

	for _, batch := range chunk(dedupeVehicles(records), r.batchSize) {
		inserted, updated, err := r.vehicles.UpsertBatch(ctx, batch)
		if err != nil {
			r.logger.Error("upsert batch failed", "size", len(batch), "error", err)
			result.Failed += len(batch)
			result.Errors = append(result.Errors, fmt.Errorf("upsert batch of %d: %w", len(batch), err))
			continue
		}
		result.Inserted += inserted
		result.Updated += updated
	}

	return result
}

// ApplyPriceUpdates applies price-only changes in batches.
func (r *Reconciler) ApplyPriceUpdates(ctx context.Context, source domain.Source, updates []domain.PriceUpdate) Result {
	var result Result

	for _, batch := range chunk(dedupePrices(updates), r.batchSize) {
		n, err := r.vehicles.UpdatePrices(ctx, source, batch)
		if err != nil {
			r.logger.Error("price batch failed", "size", len(batch), "error", err)
			result.Failed += len(batch)
			result.Errors = append(result.Errors, fmt.Errorf("update prices batch of %d: %w", len(batch), err))
			continue
		}
		result.Updated += n
	}

	return result
}

// ApplyRemovals deletes vehicles that no open order references and marks the
// rest unavailable. The guard check and both writes share one transaction
// per batch.
func (r *Reconciler) ApplyRemovals(ctx context.Context, source domain.Source, sourceIDs []string) Result {
	var result Result

	for _, batch := range chunk(dedupeIDs(sourceIDs), r.batchSize) {
		var removed, unavailable int

		err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			guarded, err := r.orders.ActiveOrderSourceIDs(txCtx, source, batch)
			if err != nil {
				return err
			}

			deletable := make([]string, 0, len(batch))
			held := make([]string, 0, len(guarded))
			for _, id := range batch {
				if guarded[id] {
					held = append(held, id)
				} else {
					deletable = append(deletable, id)
				}
			}

			if len(deletable) > 0 {
				if removed, err = r.vehicles.DeleteBatch(txCtx, source, deletable); err != nil {
					return err
				}
			}
			if len(held) > 0 {
				if unavailable, err = r.vehicles.MarkUnavailable(txCtx, source, held); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			r.logger.Error("removal batch failed", "size", len(batch), "error", err)
			result.Failed += len(batch)
			result.Errors = append(result.Errors, fmt.Errorf("remove batch of %d: %w", len(batch), err))
			continue
		}

		if unavailable > 0 {
			r.logger.Info("kept vehicles with open orders", "count", unavailable)
		}
		result.Removed += removed
		result.Unavailable += unavailable
	}

	return result
}

func chunk[T any](items []T, size int) [][]T {
	var batches [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}

// dedupeVehicles keeps the last occurrence of each key at the position of
// its first occurrence.
func dedupeVehicles(records []domain.Vehicle) []domain.Vehicle {
	type key struct {
		source   domain.Source
		sourceID string
	}

	index := make(map[key]int, len(records))
	out := make([]domain.Vehicle, 0, len(records))
	for _, v := range records {
		k := key{v.Source, v.SourceID}
		if i, ok := index[k]; ok {
			out[i] = v
			continue
		}
		index[k] = len(out)
		out = append(out, v)
	}
	return out
}

func dedupePrices(updates []domain.PriceUpdate) []domain.PriceUpdate {
	index := make(map[string]int, len(updates))
	out := make([]domain.PriceUpdate, 0, len(updates))
	for _, u := range updates {
		if i, ok := index[u.SourceID]; ok {
			out[i] = u
			continue
		}
		index[u.SourceID] = len(out)
		out = append(out, u)
	}
	return out
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
