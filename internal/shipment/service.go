package shipment

import (
	"context"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is the downstream notification dispatcher. Dispatch is
// best-effort: the tracker never waits for delivery confirmation.
type Notifier interface {
	Notify(n NotifyInput)
}

type Service interface {
	RecordStatusChange(ctx context.Context, input StatusChangeInput) error
	Timeline(ctx context.Context, shipmentID uuid.UUID, includeInternal bool) ([]*Event, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) RecordStatusChange(ctx context.Context, input StatusChangeInput) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordStatusChange"),
		zap.String("shipment_id", input.ShipmentID.String()),
		zap.String("new_status", string(input.Status)),
	)

	if !input.Status.Valid() {
		log.Warn("rejected unknown status")
		return ErrInvalidStatus
	}

	if input.Visibility == "" {
		input.Visibility = VisibilityPublic
	}

	// 1. Load shipment
	sh, err := s.repo.GetShipment(ctx, input.ShipmentID)
	if err != nil {
		return err
	}

	// 2. Validate the transition
	if !CanTransition(sh.Status, input.Status) {
		log.Warn("rejected illegal transition",
			zap.String("current_status", string(sh.Status)),
		)
		return ErrInvalidTransition
	}

	if (input.Status == StatusCancelled || input.Status == StatusFailed) &&
		(input.ReasonCode == nil || *input.ReasonCode == "") {
		return ErrReasonRequired
	}

	// 3. Apply status and reason. A non-nil empty reason clears the stored one.
	sh.Status = input.Status
	if input.ReasonCode != nil {
		if *input.ReasonCode == "" {
			sh.ReasonCode = nil
		} else {
			sh.ReasonCode = input.ReasonCode
		}
	}

	// The timeline event records only the reason given with this change.
	// The merged row value may still hold a reason from an earlier status
	// and must not be attributed to this one.
	var changeReason *string
	if input.ReasonCode != nil && *input.ReasonCode != "" {
		changeReason = input.ReasonCode
	}

	ev := &Event{
		ID:         uuid.New(),
		ShipmentID: sh.ID,
		Status:     input.Status,
		Message:    input.Message,
		ReasonCode: changeReason,
		Visibility: input.Visibility,
	}

	// 4. Persist update + timeline event atomically
	if err := s.repo.UpdateStatusTx(ctx, sh, ev); err != nil {
		log.Error("failed to persist status change", zap.Error(err))
		return err
	}

	// 5. Dispatch after commit, public changes only, best-effort
	if input.Visibility == VisibilityPublic {
		userID, err := s.repo.GetOrderOwner(ctx, sh.OrderID)
		if err != nil {
			log.Error("failed to resolve order owner, skipping notification", zap.Error(err))
			return nil
		}

		s.notifier.Notify(NotifyInput{
			UserID:     userID,
			OrderID:    sh.OrderID,
			ShipmentID: sh.ID,
			Status:     input.Status,
			ReasonCode: changeReason,
			EventType:  ClassifyEvent(input.Status),
		})
	}

	log.Info("shipment status change recorded")

	return nil
}

func (s *service) Timeline(ctx context.Context, shipmentID uuid.UUID, includeInternal bool) ([]*Event, error) {
	sh, err := s.repo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	role := utils.GetUserRoleFromContext(ctx)
	if role != utils.RolePartner && role != utils.RoleAdmin {
		ownerID, err := s.repo.GetOrderOwner(ctx, sh.OrderID)
		if err != nil {
			return nil, err
		}
		userID, _ := utils.GetUserIDFromContext(ctx)
		if ownerID != userID {
			return nil, ErrUnauthorized
		}
	}

	return s.repo.ListEvents(ctx, shipmentID, includeInternal)
}
