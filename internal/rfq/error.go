package rfq

import "errors"

var (
	ErrEmptyDescription = errors.New("rfq description is required")
	ErrUnauthorized     = errors.New("missing user identity")
)
