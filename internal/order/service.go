package order

import (
	"context"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/shipment"
	"buildmart-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Order, error)
	GetDetail(ctx context.Context, orderID uint) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Int("item_count", len(input.Items)),
		zap.Bool("split", input.Delivery.Split),
	)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	// 1. Validate everything before any write
	if err := validateCreate(input); err != nil {
		log.Warn("order intake rejected", zap.Error(err))
		return nil, err
	}

	// 2. Derive the shipment set and item assignment
	planned := PlanShipments(input.Items, input.Delivery, input.Totals.Delivery)

	order := &Order{
		UserID:      userID,
		Status:      StatusSubmitted,
		Subtotal:    input.Totals.Subtotal,
		DeliveryFee: input.Totals.Delivery,
		Total:       input.Totals.Total,
		City:        input.Details.City,
		Address:     input.Details.Address,
		Phone:       input.Details.Phone,
		Notes:       input.Details.Notes,
	}

	// 3. Persist header, shipments and items as one transaction
	if err := s.repo.CreateOrderTx(ctx, order, planned); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	for _, p := range planned {
		order.Shipments = append(order.Shipments, p.Shipment)
		order.Items = append(order.Items, p.Items...)
	}

	log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Int("shipment_count", len(order.Shipments)),
	)

	return order, nil
}

func validateCreate(input CreateInput) error {
	if len(input.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return ErrNegativePrice
		}
	}
	if input.Details.City == "" {
		return ErrMissingCity
	}
	if input.Details.Address == "" {
		return ErrMissingAddress
	}
	if !shipment.ValidFulfillmentType(input.Delivery.Method) {
		return ErrUnknownMethod
	}
	if input.Delivery.Split && input.Delivery.SecondaryMethod != "" &&
		!shipment.ValidFulfillmentType(input.Delivery.SecondaryMethod) {
		return ErrUnknownMethod
	}
	return nil
}

func (s *service) GetDetail(ctx context.Context, orderID uint) (*Order, error) {
	order, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	isAdmin := utils.GetUserRoleFromContext(ctx) == utils.RoleAdmin

	if !isAdmin && order.UserID != userID {
		return nil, ErrUnauthorized
	}

	return order, nil
}
