package httpapi

import (
	"net/http"

	"buildmart-be/internal/order"
	"buildmart-be/internal/shipment"
	"buildmart-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type orderItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity" binding:"required"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type orderTotalsRequest struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Delivery decimal.Decimal `json:"delivery"`
	Total    decimal.Decimal `json:"total"`
}

type orderDeliveryRequest struct {
	Method          string          `json:"method" binding:"required"`
	Split           bool            `json:"split"`
	WoltItems       []string        `json:"woltItems"`
	WoltFee         decimal.Decimal `json:"woltFee"`
	SecondaryMethod string          `json:"secondaryMethod"`
}

type orderDetailsRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

type createOrderRequest struct {
	Items       []orderItemRequest   `json:"items" binding:"required"`
	Totals      orderTotalsRequest   `json:"totals"`
	Delivery    orderDeliveryRequest `json:"delivery" binding:"required"`
	UserDetails orderDetailsRequest  `json:"userDetails"`
}

func (r createOrderRequest) toInput() order.CreateInput {
	items := make([]order.ItemInput, 0, len(r.Items))
	for _, i := range r.Items {
		items = append(items, order.ItemInput{
			ProductID: i.ProductID,
			Name:      i.Name,
			Brand:     i.Brand,
			Quantity:  i.Quantity,
			Unit:      i.Unit,
			UnitPrice: i.UnitPrice,
		})
	}

	return order.CreateInput{
		Items: items,
		Totals: order.TotalsInput{
			Subtotal: r.Totals.Subtotal,
			Delivery: r.Totals.Delivery,
			Total:    r.Totals.Total,
		},
		Delivery: order.DeliveryInput{
			Method:          shipment.FulfillmentType(r.Delivery.Method),
			Split:           r.Delivery.Split,
			WoltItems:       r.Delivery.WoltItems,
			WoltFee:         r.Delivery.WoltFee,
			SecondaryMethod: shipment.FulfillmentType(r.Delivery.SecondaryMethod),
		},
		Details: order.DetailsInput{
			City:    r.UserDetails.City,
			Address: r.UserDetails.Address,
			Phone:   r.UserDetails.Phone,
			Notes:   r.UserDetails.Notes,
		},
	}
}

func createOrderHandler(orders order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		o, err := orders.Create(c.Request.Context(), req.toInput())
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, order.MapOrder(o))
	}
}

func getOrderHandler(orders order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ToUint(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		o, err := orders.GetDetail(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, order.MapOrder(o))
	}
}
