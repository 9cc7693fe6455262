package rfq

import (
	"context"
	"strings"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/utils"

	"go.uber.org/zap"
)

const defaultListLimit = 50

type Service interface {
	Create(ctx context.Context, input CreateInput) (*RFQ, error)
	List(ctx context.Context) ([]RFQ, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*RFQ, error) {
	log := logger.FromCtx(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrEmptyDescription
	}

	r := &RFQ{
		UserID:      userID,
		Description: input.Description,
		Budget:      input.Budget,
		Phone:       input.Phone,
		City:        input.City,
		Score:       scoreLead(input),
		Category:    guessCategory(input.Description),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	log.Info("rfq created",
		zap.Uint("rfq_id", r.ID),
		zap.Int("score", r.Score),
		zap.String("category", r.Category),
	)
	return r, nil
}

func (s *service) List(ctx context.Context) ([]RFQ, error) {
	return s.repo.List(ctx, defaultListLimit)
}
