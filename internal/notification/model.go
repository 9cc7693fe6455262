package notification

import (
	"time"

	"buildmart-be/internal/shipment"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Notification is the decision record that a status change warrants
// informing the customer.
type Notification struct {
	ID            uuid.UUID
	UserID        uint
	OrderID       uint
	ShipmentID    uuid.UUID
	EventType     shipment.EventType
	Status        Status
	PayloadStatus shipment.Status
	PayloadReason *string
	CreatedAt     time.Time
}

// ChannelEvent records the per-channel delivery outcome.
type ChannelEvent struct {
	ID             uuid.UUID
	NotificationID uuid.UUID
	Channel        string
	Status         Status
	Error          *string
	CreatedAt      time.Time
}

const ChannelEmail = "email"
