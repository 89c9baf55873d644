package entity

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order is an immutable snapshot of a checked-out cart. Only Status and
// PaymentStatus change after creation.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex" json:"orderNumber"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	DeliveryAddress     DeliveryAddress `gorm:"serializer:json" json:"deliveryAddress"`
	DeliveryDate        *time.Time      `json:"deliveryDate,omitempty"`
	SpecialInstructions string          `json:"specialInstructions"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`

	Status        OrderStatus   `gorm:"index;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"default:pending" json:"paymentStatus"`

	// External payment session id; orders are created exactly once per session.
	PaymentRef string `gorm:"uniqueIndex" json:"-"`
}
