package product

import (
	"context"
	"database/sql"
	"errors"

	"buildmart-be/internal/logger"

	"go.uber.org/zap"
)

var ErrMissingIdentifier = errors.New("product has neither sku nor ean")

type Repository interface {
	// UpsertForStore inserts or updates one product scoped to the owning
	// store, keyed by SKU when present, otherwise EAN. Returns true when a
	// new row was created.
	UpsertForStore(ctx context.Context, p *Product) (created bool, err error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const upsertBySKU = `
INSERT INTO products
	(store_id, sku, ean, name, brand, unit, price, weight_kg, length_cm, width_cm, height_cm, in_stock, missing_dimensions, updated_at)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
ON CONFLICT (store_id, sku) WHERE sku IS NOT NULL DO UPDATE SET
	ean = EXCLUDED.ean,
	name = EXCLUDED.name,
	brand = EXCLUDED.brand,
	unit = EXCLUDED.unit,
	price = EXCLUDED.price,
	weight_kg = EXCLUDED.weight_kg,
	length_cm = EXCLUDED.length_cm,
	width_cm = EXCLUDED.width_cm,
	height_cm = EXCLUDED.height_cm,
	in_stock = EXCLUDED.in_stock,
	missing_dimensions = EXCLUDED.missing_dimensions,
	updated_at = NOW()
RETURNING id, (xmax = 0)`

const upsertByEAN = `
INSERT INTO products
	(store_id, sku, ean, name, brand, unit, price, weight_kg, length_cm, width_cm, height_cm, in_stock, missing_dimensions, updated_at)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
ON CONFLICT (store_id, ean) WHERE ean IS NOT NULL DO UPDATE SET
	sku = EXCLUDED.sku,
	name = EXCLUDED.name,
	brand = EXCLUDED.brand,
	unit = EXCLUDED.unit,
	price = EXCLUDED.price,
	weight_kg = EXCLUDED.weight_kg,
	length_cm = EXCLUDED.length_cm,
	width_cm = EXCLUDED.width_cm,
	height_cm = EXCLUDED.height_cm,
	in_stock = EXCLUDED.in_stock,
	missing_dimensions = EXCLUDED.missing_dimensions,
	updated_at = NOW()
RETURNING id, (xmax = 0)`

func (r *repository) UpsertForStore(ctx context.Context, p *Product) (bool, error) {
	log := logger.FromCtx(ctx)

	// SKU wins over EAN as the conflict key when both are present.
	query := upsertBySKU
	if p.SKU == nil {
		if p.EAN == nil {
			return false, ErrMissingIdentifier
		}
		query = upsertByEAN
	}

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		p.StoreID, p.SKU, p.EAN, p.Name, p.Brand, p.Unit, p.Price,
		p.WeightKg, p.LengthCm, p.WidthCm, p.HeightCm, p.InStock, p.MissingDimensions,
	).Scan(&p.ID, &created)

	if err != nil {
		log.Error("db: failed to upsert product",
			zap.Uint("store_id", p.StoreID),
			zap.Error(err),
		)
		return false, err
	}

	return created, nil
}
