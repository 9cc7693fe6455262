package metrics

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// DashboardStats is the partner portal summary for one store.
type DashboardStats struct {
	OrdersByStatus   map[string]int
	Revenue          decimal.Decimal
	PendingShipments int
}

type Repository interface {
	DashboardStats(ctx context.Context, storeID uint) (*DashboardStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) DashboardStats(ctx context.Context, storeID uint) (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
		Revenue:        decimal.Zero,
	}

	// The join fans out one row per order item, so orders are collapsed
	// to distinct ids before counting and summing.
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.status, COUNT(*), COALESCE(SUM(o.total), 0)
		FROM orders o
		WHERE o.id IN (
			SELECT DISTINCT s.order_id
			FROM shipments s
			JOIN order_items oi ON oi.shipment_id = s.id
			JOIN products p ON p.id::text = oi.product_id
			WHERE p.store_id = $1
		)
		GROUP BY o.status
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var total decimal.Decimal
		if err := rows.Scan(&status, &count, &total); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
		if status == "completed" || status == "confirmed" {
			stats.Revenue = stats.Revenue.Add(total)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT s.id)
		FROM shipments s
		JOIN order_items oi ON oi.shipment_id = s.id
		JOIN products p ON p.id::text = oi.product_id
		WHERE p.store_id = $1 AND s.status IN ('pending', 'preparing')
	`, storeID).Scan(&stats.PendingShipments)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
