package rfq

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFQ is a free-form request for quotation submitted by a buyer. Partners
// browse the list sorted by lead score.
type RFQ struct {
	ID          uint
	UserID      uint
	Description string
	Budget      *decimal.Decimal
	Phone       *string
	City        *string
	Score       int
	Category    string
	CreatedAt   time.Time
}

type CreateInput struct {
	Description string
	Budget      *decimal.Decimal
	Phone       *string
	City        *string
}
