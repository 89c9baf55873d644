package entity

import (
	"gorm.io/gorm"
)

type CakeCategory string

const (
	CategoryBirthday CakeCategory = "birthday"
	CategoryWedding  CakeCategory = "wedding"
	CategorySeasonal CakeCategory = "seasonal"
	CategorySlice    CakeCategory = "slice"
	CategoryCupcakes CakeCategory = "cupcakes"
)

func (c CakeCategory) Valid() bool {
	switch c {
	case CategoryBirthday, CategoryWedding, CategorySeasonal, CategorySlice, CategoryCupcakes:
		return true
	}
	return false
}

// Cake is a catalog product. "Cake" covers everything we sell, including
// slices and cupcakes. Owned by catalog administration; shoppers only read.
type Cake struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	Sizes    []string     `gorm:"serializer:json" json:"sizes"`
	Flavors  []string     `gorm:"serializer:json" json:"flavors"`
	Category CakeCategory `gorm:"index" json:"category"`
	IsActive bool         `gorm:"default:true" json:"isActive"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}

func (c *Cake) HasSize(size string) bool {
	for _, s := range c.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (c *Cake) HasFlavor(flavor string) bool {
	for _, f := range c.Flavors {
		if f == flavor {
			return true
		}
	}
	return false
}
