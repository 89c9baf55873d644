package services

import "errors"

// Every failure a caller can act on maps to one of these; anything else is
// a backing-store problem and propagates wrapped.
var (
	ErrAuthRequired      = errors.New("sign in required")
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidOption     = errors.New("size or flavor not offered for this cake")
	ErrPaymentSession    = errors.New("failed to create payment session")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
