package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FulfillmentType string

const (
	FulfillmentWolt   FulfillmentType = "wolt"
	FulfillmentPickup FulfillmentType = "pickup"
	FulfillmentStore  FulfillmentType = "store"
)

func ValidFulfillmentType(t FulfillmentType) bool {
	switch t {
	case FulfillmentWolt, FulfillmentPickup, FulfillmentStore:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusPreparing  Status = "preparing"
	StatusDispatched Status = "dispatched"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

// transitions is the forward lifecycle. cancelled/failed are handled
// separately: reachable from any non-terminal state with a reason code.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing},
	StatusPreparing: {StatusDispatched},
	StatusDispatched: {
		StatusDelivered,
	},
}

func (s Status) Terminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDispatched, StatusDelivered,
		StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether a shipment may move from -> to.
// Abort states require an explicit reason and are checked by the service.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled || to == StatusFailed {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
)

type EventType string

const (
	EventShipmentStatus EventType = "shipment_status"
	EventActionRequired EventType = "action_required"
)

// ClassifyEvent maps a new shipment status to the notification event type.
func ClassifyEvent(status Status) EventType {
	if status == StatusDispatched || status == StatusDelivered {
		return EventShipmentStatus
	}
	return EventActionRequired
}

type Shipment struct {
	ID         uuid.UUID
	OrderID    uint
	Type       FulfillmentType
	Status     Status
	ReasonCode *string
	Fee        decimal.Decimal
	ETA        *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Event is one append-only timeline entry for a shipment.
type Event struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	Status     Status
	Message    *string
	ReasonCode *string
	Visibility Visibility
	CreatedAt  time.Time
}

// StatusChangeInput carries one recordStatusChange request.
// A non-nil empty ReasonCode clears the stored reason.
type StatusChangeInput struct {
	ShipmentID uuid.UUID
	Status     Status
	Message    *string
	ReasonCode *string
	Visibility Visibility
}

// NotifyInput is handed to the notification dispatcher after a public
// status change has been committed.
type NotifyInput struct {
	UserID     uint
	OrderID    uint
	ShipmentID uuid.UUID
	Status     Status
	ReasonCode *string
	EventType  EventType
}
