package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog row owned by a partner store. Rows arrive mostly
// through CSV imports, so every physical attribute is optional.
type Product struct {
	ID                uint
	StoreID           uint
	SKU               *string
	EAN               *string
	Name              string
	Brand             *string
	Unit              *string
	Price             decimal.Decimal
	WeightKg          *decimal.Decimal
	LengthCm          *decimal.Decimal
	WidthCm           *decimal.Decimal
	HeightCm          *decimal.Decimal
	InStock           bool
	MissingDimensions bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
