package order

import (
	"time"

	"buildmart-be/internal/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID          uint
	UserID      uint
	Status      Status
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	City        string
	Address     string
	Phone       string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Shipments []shipment.Shipment
	Items     []Item
}

// Item is one product line. Immutable after creation; LineTotal is
// unit price times quantity, computed at intake.
type Item struct {
	ID         uint
	ShipmentID uuid.UUID
	ProductID  string
	Name       string
	Brand      string
	Quantity   int
	Unit       string
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}

// --- Intake input ---

type ItemInput struct {
	ProductID string
	Name      string
	Brand     string
	Quantity  int
	Unit      string
	UnitPrice decimal.Decimal
}

type TotalsInput struct {
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
}

type DeliveryInput struct {
	Method          shipment.FulfillmentType
	Split           bool
	WoltItems       []string
	WoltFee         decimal.Decimal
	SecondaryMethod shipment.FulfillmentType
}

type DetailsInput struct {
	City    string
	Address string
	Phone   string
	Notes   string
}

type CreateInput struct {
	Items    []ItemInput
	Totals   TotalsInput
	Delivery DeliveryInput
	Details  DetailsInput
}
