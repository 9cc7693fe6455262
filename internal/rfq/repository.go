package rfq

import (
	"context"
	"database/sql"

	"buildmart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, r *RFQ) error
	List(ctx context.Context, limit int) ([]RFQ, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rfq *RFQ) error {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rfqs (user_id, description, budget, phone, city, score, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		rfq.UserID, rfq.Description, rfq.Budget, rfq.Phone, rfq.City, rfq.Score, rfq.Category,
	).Scan(&rfq.ID, &rfq.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert rfq", zap.Uint("user_id", rfq.UserID), zap.Error(err))
	}
	return err
}

func (r *repository) List(ctx context.Context, limit int) ([]RFQ, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, description, budget, phone, city, score, category, created_at
		 FROM rfqs
		 ORDER BY score DESC, created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		log.Error("db: failed to list rfqs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []RFQ
	for rows.Next() {
		var item RFQ
		if err := rows.Scan(&item.ID, &item.UserID, &item.Description, &item.Budget,
			&item.Phone, &item.City, &item.Score, &item.Category, &item.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
