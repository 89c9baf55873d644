package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	CakeID uint `json:"cakeId"`
	Cake   Cake `json:"cake"`

	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	LineTotal           float64 `json:"lineTotal"`
	SelectedSize        string  `json:"selectedSize"`
	SelectedFlavor      string  `json:"selectedFlavor"`
	CustomMessage       string  `json:"customMessage"`
	SpecialInstructions string  `json:"specialInstructions"`
}
