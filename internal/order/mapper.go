package order

import (
	"time"

	"buildmart-be/internal/shipment"
)

// API-facing shapes returned by the order endpoints.

type ItemResponse struct {
	ID         uint   `json:"id"`
	ShipmentID string `json:"shipmentId"`
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit,omitempty"`
	UnitPrice  string `json:"unitPrice"`
	LineTotal  string `json:"lineTotal"`
}

type ShipmentResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	ReasonCode *string `json:"reasonCode,omitempty"`
	Fee        string  `json:"fee"`
	ETA        *string `json:"eta,omitempty"`
}

type OrderResponse struct {
	ID          uint               `json:"id"`
	UserID      uint               `json:"userId"`
	Status      string             `json:"status"`
	Subtotal    string             `json:"subtotal"`
	DeliveryFee string             `json:"deliveryFee"`
	Total       string             `json:"total"`
	City        string             `json:"city"`
	Address     string             `json:"address"`
	Phone       string             `json:"phone,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	Shipments   []ShipmentResponse `json:"shipments"`
	Items       []ItemResponse     `json:"items"`
}

func MapItem(i Item) ItemResponse {
	return ItemResponse{
		ID:         i.ID,
		ShipmentID: i.ShipmentID.String(),
		ProductID:  i.ProductID,
		Name:       i.Name,
		Brand:      i.Brand,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		UnitPrice:  i.UnitPrice.String(),
		LineTotal:  i.LineTotal.String(),
	}
}

func MapShipment(s shipment.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:         s.ID.String(),
		Type:       string(s.Type),
		Status:     string(s.Status),
		ReasonCode: s.ReasonCode,
		Fee:        s.Fee.String(),
	}
	if s.ETA != nil {
		eta := s.ETA.Format(time.RFC3339)
		resp.ETA = &eta
	}
	return resp
}

func MapOrder(o *Order) *OrderResponse {
	if o == nil {
		return nil
	}

	resp := &OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Subtotal:    o.Subtotal.String(),
		DeliveryFee: o.DeliveryFee.String(),
		Total:       o.Total.String(),
		City:        o.City,
		Address:     o.Address,
		Phone:       o.Phone,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		Shipments:   make([]ShipmentResponse, 0, len(o.Shipments)),
		Items:       make([]ItemResponse, 0, len(o.Items)),
	}
	for _, s := range o.Shipments {
		resp.Shipments = append(resp.Shipments, MapShipment(s))
	}
	for _, i := range o.Items {
		resp.Items = append(resp.Items, MapItem(i))
	}
	return resp
}
