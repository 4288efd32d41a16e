package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vehicle_sync/internal/domain"
)

// Orders in these states no longer hold on to their vehicle.
var closedOrderStatuses = []string{"cancelled", "refunded"}

// OrderGuard answers the removal guard from the orders table. It never writes.
type OrderGuard struct {
	db *sqlx.DB
}

func NewOrderGuard(db *sqlx.DB) *OrderGuard {
	return &OrderGuard{db: db}
}

// ActiveOrderSourceIDs returns the subset of sourceIDs referenced by an open order.
func (g *OrderGuard) ActiveOrderSourceIDs(ctx context.Context, source domain.Source, sourceIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(sourceIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT DISTINCT v.source_id
		FROM vehicles v
		INNER JOIN orders o ON o.vehicle_id = v.id
		WHERE v.source = $1 AND v.source_id = ANY($2) AND o.status <> ALL($3)`

	var ids []string
	err := GetExecutor(ctx, g.db).SelectContext(ctx, &ids, query, source, pq.Array(sourceIDs), pq.Array(closedOrderStatuses))
	if err != nil {
		return nil, fmt.Errorf("check active orders: %w", err)
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
