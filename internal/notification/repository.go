package notification

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	MarkNotification(ctx context.Context, id uuid.UUID, status Status) error
	InsertChannelEvent(ctx context.Context, ev *ChannelEvent) error
	GetUserEmail(ctx context.Context, userID uint) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateNotification(ctx context.Context, n *Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, user_id, order_id, shipment_id, event_type,
			status, payload_status, payload_reason, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
	`,
		n.ID,
		n.UserID,
		n.OrderID,
		n.ShipmentID,
		n.EventType,
		n.Status,
		n.PayloadStatus,
		n.PayloadReason,
	)
	return err
}

func (r *repository) MarkNotification(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *repository) InsertChannelEvent(ctx context.Context, ev *ChannelEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_channel_events (
			id, notification_id, channel, status, error, created_at
		) VALUES ($1,$2,$3,$4,$5,NOW())
	`,
		ev.ID,
		ev.NotificationID,
		ev.Channel,
		ev.Status,
		ev.Error,
	)
	return err
}

func (r *repository) GetUserEmail(ctx context.Context, userID uint) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx, `
		SELECT email FROM users WHERE id = $1
	`, userID).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
