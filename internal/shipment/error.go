package shipment

import "errors"

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidStatus     = errors.New("invalid shipment status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrReasonRequired    = errors.New("reason code required for this status")
	ErrUnauthorized      = errors.New("unauthorized")
)
