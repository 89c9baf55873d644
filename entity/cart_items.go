package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending line in a shopper's cart. At most one row exists
// per (user, cake, size, flavor); adding the same combination again merges
// into the existing row. UnitPrice is copied from Cake.BasePrice when the
// row is created and never re-derived from the catalog afterwards.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	CakeID uint `json:"cakeId"`
	Cake   Cake `json:"cake"`

	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	SelectedSize        string  `json:"selectedSize"`
	SelectedFlavor      string  `json:"selectedFlavor"`
	CustomMessage       string  `json:"customMessage"`
	SpecialInstructions string  `json:"specialInstructions"`
}

func (i *CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
