package order

import (
	"context"
	"database/sql"
	"errors"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/shipment"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx persists the order header, its shipments and the item
	// lines as one all-or-nothing unit, in that insertion order because
	// items reference shipment ids.
	CreateOrderTx(ctx context.Context, order *Order, planned []PlannedShipment) error

	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(ctx context.Context, order *Order, planned []PlannedShipment) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("shipment_count", len(planned)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	// 1. Insert order header
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, status, subtotal, delivery_fee, total,
			city, address, phone, notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id
	`,
		order.UserID,
		order.Status,
		order.Subtotal,
		order.DeliveryFee,
		order.Total,
		order.City,
		order.Address,
		order.Phone,
		order.Notes,
	).Scan(&order.ID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	// 2. Insert shipments
	for i := range planned {
		sh := &planned[i].Shipment
		sh.OrderID = order.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO shipments (
				id, order_id, fulfillment_type, status, fee, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		`,
			sh.ID,
			sh.OrderID,
			sh.Type,
			sh.Status,
			sh.Fee,
		)
		if err != nil {
			log.Error("failed to insert shipment",
				zap.String("shipment_id", sh.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	// 3. Insert item lines
	for _, p := range planned {
		for _, item := range p.Items {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (
					shipment_id, product_id, name, brand,
					quantity, unit, unit_price, line_total
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			`,
				item.ShipmentID,
				item.ProductID,
				item.Name,
				item.Brand,
				item.Quantity,
				item.Unit,
				item.UnitPrice,
				item.LineTotal,
			)
			if err != nil {
				log.Error("failed to insert order item",
					zap.String("product_id", item.ProductID),
					zap.Error(err),
				)
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed")

	return nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, status, subtotal, delivery_fee, total,
		       city, address, phone, notes, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID,
		&o.UserID,
		&o.Status,
		&o.Subtotal,
		&o.DeliveryFee,
		&o.Total,
		&o.City,
		&o.Address,
		&o.Phone,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	// Load shipments
	shRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, fulfillment_type, status, reason_code, fee, eta, created_at, updated_at
		FROM shipments
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer shRows.Close()

	for shRows.Next() {
		var sh shipment.Shipment
		if err := shRows.Scan(
			&sh.ID,
			&sh.OrderID,
			&sh.Type,
			&sh.Status,
			&sh.ReasonCode,
			&sh.Fee,
			&sh.ETA,
			&sh.CreatedAt,
			&sh.UpdatedAt,
		); err != nil {
			return nil, err
		}
		o.Shipments = append(o.Shipments, sh)
	}
	if err := shRows.Err(); err != nil {
		return nil, err
	}

	// Load items across all shipments of the order
	itemRows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.shipment_id, oi.product_id, oi.name, oi.brand,
		       oi.quantity, oi.unit, oi.unit_price, oi.line_total
		FROM order_items oi
		JOIN shipments s ON s.id = oi.shipment_id
		WHERE s.order_id = $1
		ORDER BY oi.id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item Item
		if err := itemRows.Scan(
			&item.ID,
			&item.ShipmentID,
			&item.ProductID,
			&item.Name,
			&item.Brand,
			&item.Quantity,
			&item.Unit,
			&item.UnitPrice,
			&item.LineTotal,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
