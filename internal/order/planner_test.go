package order

import (
	"testing"

	"buildmart-be/internal/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleItems() []ItemInput {
	return []ItemInput{
		{ProductID: "p1", Name: "Gypsum board", Quantity: 2, Unit: "pcs", UnitPrice: dec("25.50")},
		{ProductID: "p2", Name: "Wood screws 4x40", Quantity: 1, Unit: "box", UnitPrice: dec("4.20")},
	}
}

func TestPlanShipments_NoSplit(t *testing.T) {
	items := sampleItems()
	delivery := DeliveryInput{Method: shipment.FulfillmentStore}

	planned := PlanShipments(items, delivery, dec("9.90"))

	require.Len(t, planned, 1)
	sh := planned[0]
	assert.Equal(t, shipment.FulfillmentStore, sh.Shipment.Type)
	assert.Equal(t, shipment.StatusPending, sh.Shipment.Status)
	assert.True(t, sh.Shipment.Fee.Equal(dec("9.90")))

	// Every item assigned to the single shipment
	require.Len(t, sh.Items, 2)
	for _, item := range sh.Items {
		assert.Equal(t, sh.Shipment.ID, item.ShipmentID)
	}
}

func TestPlanShipments_Split(t *testing.T) {
	// Worked example: p2 routed to wolt, p1 falls back to pickup
	items := sampleItems()
	delivery := DeliveryInput{
		Method:          shipment.FulfillmentWolt,
		Split:           true,
		WoltItems:       []string{"p2"},
		WoltFee:         dec("5.00"),
		SecondaryMethod: shipment.FulfillmentPickup,
	}

	planned := PlanShipments(items, delivery, dec("5.00"))

	require.Len(t, planned, 2)
	wolt, secondary := planned[0], planned[1]

	assert.Equal(t, shipment.FulfillmentWolt, wolt.Shipment.Type)
	assert.True(t, wolt.Shipment.Fee.Equal(dec("5.00")))
	assert.Equal(t, shipment.FulfillmentPickup, secondary.Shipment.Type)
	assert.True(t, secondary.Shipment.Fee.IsZero())

	require.Len(t, wolt.Items, 1)
	assert.Equal(t, "p2", wolt.Items[0].ProductID)
	assert.True(t, wolt.Items[0].LineTotal.Equal(dec("4.20")))

	require.Len(t, secondary.Items, 1)
	assert.Equal(t, "p1", secondary.Items[0].ProductID)
	assert.True(t, secondary.Items[0].LineTotal.Equal(dec("51.00")))

	for _, p := range planned {
		assert.Equal(t, shipment.StatusPending, p.Shipment.Status)
	}
}

func TestPlanShipments_SplitDefaultsToPickup(t *testing.T) {
	items := sampleItems()
	delivery := DeliveryInput{
		Method:    shipment.FulfillmentWolt,
		Split:     true,
		WoltItems: []string{"p1"},
		WoltFee:   dec("7.50"),
	}

	planned := PlanShipments(items, delivery, dec("7.50"))

	require.Len(t, planned, 2)
	assert.Equal(t, shipment.FulfillmentPickup, planned[1].Shipment.Type)
}

func TestPlanShipments_PartitionProperty(t *testing.T) {
	items := []ItemInput{
		{ProductID: "a", Quantity: 1, UnitPrice: dec("1.00")},
		{ProductID: "b", Quantity: 2, UnitPrice: dec("2.00")},
		{ProductID: "c", Quantity: 3, UnitPrice: dec("3.00")},
		{ProductID: "d", Quantity: 4, UnitPrice: dec("4.00")},
	}
	delivery := DeliveryInput{
		Method:    shipment.FulfillmentWolt,
		Split:     true,
		WoltItems: []string{"b", "d"},
		WoltFee:   dec("6.00"),
	}

	planned := PlanShipments(items, delivery, dec("6.00"))
	require.Len(t, planned, 2)

	seen := make(map[string]int)
	for _, p := range planned {
		for _, item := range p.Items {
			seen[item.ProductID]++
			assert.Equal(t, p.Shipment.ID, item.ShipmentID)
		}
	}

	// Union of assignments equals the full item set, no overlap, no omission
	require.Len(t, seen, 4)
	for _, id := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, 1, seen[id], "item %s assigned exactly once", id)
	}

	woltIDs := map[string]bool{}
	for _, item := range planned[0].Items {
		woltIDs[item.ProductID] = true
	}
	assert.True(t, woltIDs["b"])
	assert.True(t, woltIDs["d"])
	assert.False(t, woltIDs["a"])
	assert.False(t, woltIDs["c"])
}

func TestPlanShipments_LineTotals(t *testing.T) {
	items := []ItemInput{
		{ProductID: "x", Quantity: 3, UnitPrice: dec("19.99")},
	}
	planned := PlanShipments(items, DeliveryInput{Method: shipment.FulfillmentPickup}, decimal.Zero)

	require.Len(t, planned, 1)
	require.Len(t, planned[0].Items, 1)
	assert.True(t, planned[0].Items[0].LineTotal.Equal(dec("59.97")))
}
