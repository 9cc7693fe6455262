package order

import "errors"

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrNegativePrice   = errors.New("unit price must not be negative")
	ErrMissingCity     = errors.New("delivery city is required")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrUnknownMethod   = errors.New("unknown delivery method")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUnauthorized    = errors.New("unauthorized")
)
