package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"buildmart-be/internal/shipment"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannedFixture() (*Order, []PlannedShipment) {
	order := &Order{
		UserID:      3,
		Status:      StatusSubmitted,
		Subtotal:    dec("55.20"),
		DeliveryFee: dec("5.00"),
		Total:       dec("60.20"),
		City:        "Tartu",
		Address:     "Riia 12",
	}

	woltID := uuid.New()
	pickupID := uuid.New()

	planned := []PlannedShipment{
		{
			Shipment: shipment.Shipment{ID: woltID, Type: shipment.FulfillmentWolt, Status: shipment.StatusPending, Fee: dec("5.00")},
			Items: []Item{
				{ShipmentID: woltID, ProductID: "p2", Name: "Sealant", Quantity: 1, Unit: "pcs", UnitPrice: dec("4.20"), LineTotal: dec("4.20")},
			},
		},
		{
			Shipment: shipment.Shipment{ID: pickupID, Type: shipment.FulfillmentPickup, Status: shipment.StatusPending, Fee: dec("0")},
			Items: []Item{
				{ShipmentID: pickupID, ProductID: "p1", Name: "Gypsum board", Quantity: 2, Unit: "pcs", UnitPrice: dec("25.50"), LineTotal: dec("51.00")},
			},
		},
	}

	return order, planned
}

func TestRepository_CreateOrderTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		order, planned := plannedFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(201))
		mock.ExpectExec(`INSERT INTO shipments`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO shipments`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err = repo.CreateOrderTx(ctx, order, planned)
		require.NoError(t, err)
		assert.Equal(t, uint(201), order.ID)
		assert.Equal(t, uint(201), planned[0].Shipment.OrderID)
		assert.Equal(t, uint(201), planned[1].Shipment.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("HeaderInsertFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		order, planned := plannedFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		err = repo.CreateOrderTx(ctx, order, planned)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemInsertFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		order, planned := plannedFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(202))
		mock.ExpectExec(`INSERT INTO shipments`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO shipments`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err = repo.CreateOrderTx(ctx, order, planned)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetOrderDetail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	shipmentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, status, .* FROM orders WHERE id = \$1`).
			WithArgs(uint(300)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "status", "subtotal", "delivery_fee", "total",
				"city", "address", "phone", "notes", "created_at", "updated_at",
			}).AddRow(
				300, 3, "submitted", "55.20", "5.00", "60.20",
				"Tartu", "Riia 12", "", "", time.Now(), time.Now(),
			))

		mock.ExpectQuery(`SELECT id, order_id, fulfillment_type, .* FROM shipments WHERE order_id = \$1`).
			WithArgs(uint(300)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "order_id", "fulfillment_type", "status", "reason_code",
				"fee", "eta", "created_at", "updated_at",
			}).AddRow(
				shipmentID, 300, "wolt", "pending", nil,
				"5.00", nil, time.Now(), time.Now(),
			))

		mock.ExpectQuery(`SELECT oi.id, oi.shipment_id, .* FROM order_items oi`).
			WithArgs(uint(300)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "shipment_id", "product_id", "name", "brand",
				"quantity", "unit", "unit_price", "line_total",
			}).AddRow(
				1, shipmentID, "p2", "Sealant", "",
				1, "pcs", "4.20", "4.20",
			))

		order, err := repo.GetOrderDetail(ctx, 300)
		require.NoError(t, err)
		assert.Equal(t, uint(300), order.ID)
		require.Len(t, order.Shipments, 1)
		require.Len(t, order.Items, 1)
		assert.Equal(t, shipmentID, order.Items[0].ShipmentID)
		assert.True(t, order.Items[0].LineTotal.Equal(dec("4.20")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, status, .* FROM orders WHERE id = \$1`).
			WithArgs(uint(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetOrderDetail(ctx, 404)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
