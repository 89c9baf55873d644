package services

import "math"

const (
	// DeliveryFee is flat per order.
	DeliveryFee = 5.99
	// TaxRate applies to the subtotal only, not the delivery fee.
	TaxRate = 0.08
)

// roundCents snaps a dollar amount to whole cents.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// toCents converts a dollar amount to the minor units payment providers expect.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
