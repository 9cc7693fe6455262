package shipment

import (
	"context"
	"database/sql"
	"errors"

	"buildmart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)

	// GetOrderOwner resolves shipment -> order -> user.
	GetOrderOwner(ctx context.Context, orderID uint) (uint, error)

	// UpdateStatusTx updates the shipment row and appends the timeline
	// event in a single transaction.
	UpdateStatusTx(ctx context.Context, sh *Shipment, ev *Event) error

	ListEvents(ctx context.Context, shipmentID uuid.UUID, includeInternal bool) ([]*Event, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetShipment(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	query := `
		SELECT id, order_id, fulfillment_type, status, reason_code, fee, eta, created_at, updated_at
		FROM shipments
		WHERE id = $1
	`

	var s Shipment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.OrderID,
		&s.Type,
		&s.Status,
		&s.ReasonCode,
		&s.Fee,
		&s.ETA,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetOrderOwner(ctx context.Context, orderID uint) (uint, error) {
	var userID uint
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id FROM orders WHERE id = $1
	`, orderID).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *repository) UpdateStatusTx(ctx context.Context, sh *Shipment, ev *Event) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateStatusTx"),
		zap.String("shipment_id", sh.ID.String()),
		zap.String("status", string(ev.Status)),
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

	res, err := tx.ExecContext(ctx, `
		UPDATE shipments
		SET status = $1, reason_code = $2, updated_at = NOW()
		WHERE id = $3
	`, sh.Status, sh.ReasonCode, sh.ID)
	if err != nil {
		log.Error("failed to update shipment status", zap.Error(err))
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrShipmentNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shipment_events (
			id, shipment_id, status, message, reason_code, visibility, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,NOW())
	`,
		ev.ID,
		ev.ShipmentID,
		ev.Status,
		ev.Message,
		ev.ReasonCode,
		ev.Visibility,
	)
	if err != nil {
		log.Error("failed to insert shipment event", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit status change", zap.Error(err))
		return err
	}

	committed = true
	log.Info("shipment status change committed")

	return nil
}

func (r *repository) ListEvents(ctx context.Context, shipmentID uuid.UUID, includeInternal bool) ([]*Event, error) {
	query := `
		SELECT id, shipment_id, status, message, reason_code, visibility, created_at
		FROM shipment_events
		WHERE shipment_id = $1
	`
	if !includeInternal {
		query += ` AND visibility = 'public'`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(
			&ev.ID,
			&ev.ShipmentID,
			&ev.Status,
			&ev.Message,
			&ev.ReasonCode,
			&ev.Visibility,
			&ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
