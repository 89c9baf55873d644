package services

import (
	"fmt"
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/pkg/payment"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"go.uber.org/zap"
)

// PaymentProvider opens a hosted payment session for a cart snapshot and
// returns the URL the shopper is redirected to.
type PaymentProvider interface {
	CreateSession(in *payment.SessionInput) (string, error)
}

// CheckoutService is the order aggregator's front half: it prices the cart
// and starts the payment session. It never writes an order row and never
// touches the cart; that happens when the payment provider confirms, over
// in OrderService.ConfirmPayment.
type CheckoutService struct {
	CartRepo *repository.CartRepository
	Provider PaymentProvider
	Logger   *zap.Logger
}

func NewCheckoutService(cr *repository.CartRepository, p PaymentProvider, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{CartRepo: cr, Provider: p, Logger: logger}
}

type CheckoutIn struct {
	DeliveryAddress     entity.DeliveryAddress
	DeliveryDate        *time.Time
	SpecialInstructions string
}

type CheckoutOut struct {
	URL         string  `json:"url"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Totals prices a set of cart rows: subtotal, flat delivery fee, tax on the
// subtotal, grand total, all cent-rounded.
func Totals(items []entity.CartItem) (subtotal, fee, tax, total float64) {
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)
	fee = DeliveryFee
	tax = roundCents(subtotal * TaxRate)
	total = roundCents(subtotal + fee + tax)
	return
}

func (s *CheckoutService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}

	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, fee, tax, total := Totals(items)

	sessIn := &payment.SessionInput{
		UserID:              userID,
		Items:               make([]payment.LineItem, 0, len(items)),
		DeliveryFee:         toCents(fee),
		Tax:                 toCents(tax),
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: in.SpecialInstructions,
	}
	if in.DeliveryDate != nil {
		sessIn.DeliveryDate = in.DeliveryDate.Format(time.RFC3339)
	}
	for _, it := range items {
		name := it.Cake.Name
		if name == "" {
			name = fmt.Sprintf("Cake #%d", it.CakeID)
		}
		sessIn.Items = append(sessIn.Items, payment.LineItem{
			Name:       name,
			UnitAmount: toCents(it.UnitPrice),
			Quantity:   int64(it.Quantity),
		})
	}

	url, err := s.Provider.CreateSession(sessIn)
	if err != nil {
		s.Logger.Error("payment session failed",
			zap.Uint("user", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentSession, err)
	}

	return &CheckoutOut{
		URL:      url,
		Subtotal: subtotal, DeliveryFee: fee, Tax: tax, Total: total,
	}, nil
}
