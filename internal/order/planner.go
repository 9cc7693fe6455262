package order

import (
	"buildmart-be/internal/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlannedShipment is one fulfillment unit derived at intake, together with
// the item lines assigned to it.
type PlannedShipment struct {
	Shipment shipment.Shipment
	Items    []Item
}

// PlanShipments decides whether the order ships as one consignment or is
// split across the fast-courier channel and a fallback, and assigns every
// item to exactly one shipment.
//
// Per-shipment fees are NOT reconciled against the order's delivery fee
// total; the order field stays authoritative.
func PlanShipments(items []ItemInput, delivery DeliveryInput, deliveryFee decimal.Decimal) []PlannedShipment {
	if !delivery.Split {
		single := PlannedShipment{
			Shipment: shipment.Shipment{
				ID:     uuid.New(),
				Type:   delivery.Method,
				Status: shipment.StatusPending,
				Fee:    deliveryFee,
			},
		}
		for _, in := range items {
			single.Items = append(single.Items, newItem(in, single.Shipment.ID))
		}
		return []PlannedShipment{single}
	}

	secondaryMethod := delivery.SecondaryMethod
	if secondaryMethod == "" {
		secondaryMethod = shipment.FulfillmentPickup
	}

	wolt := PlannedShipment{
		Shipment: shipment.Shipment{
			ID:     uuid.New(),
			Type:   shipment.FulfillmentWolt,
			Status: shipment.StatusPending,
			Fee:    delivery.WoltFee,
		},
	}
	secondary := PlannedShipment{
		Shipment: shipment.Shipment{
			ID:     uuid.New(),
			Type:   secondaryMethod,
			Status: shipment.StatusPending,
			Fee:    decimal.Zero,
		},
	}

	woltSet := make(map[string]bool, len(delivery.WoltItems))
	for _, id := range delivery.WoltItems {
		woltSet[id] = true
	}

	for _, in := range items {
		if woltSet[in.ProductID] {
			wolt.Items = append(wolt.Items, newItem(in, wolt.Shipment.ID))
		} else {
			secondary.Items = append(secondary.Items, newItem(in, secondary.Shipment.ID))
		}
	}

	return []PlannedShipment{wolt, secondary}
}

func newItem(in ItemInput, shipmentID uuid.UUID) Item {
	return Item{
		ShipmentID: shipmentID,
		ProductID:  in.ProductID,
		Name:       in.Name,
		Brand:      in.Brand,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		UnitPrice:  in.UnitPrice,
		LineTotal:  in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
}
