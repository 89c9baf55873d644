package payment

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// LineItem is one cart row priced in minor units, ready for the provider.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// SessionInput carries the cart snapshot and delivery details into the
// hosted payment page. The metadata round-trips back on the webhook so the
// order can be materialized server-side.
type SessionInput struct {
	UserID              uint
	Items               []LineItem
	DeliveryFee         int64
	Tax                 int64
	DeliveryAddress     any
	DeliveryDate        string
	SpecialInstructions string
}

type StripeProvider struct {
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

func NewStripeProvider(secretKey, siteURL string, logger *zap.Logger) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{
		successURL: siteURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  siteURL + "/checkout",
		logger:     logger,
	}
}

// CreateSession opens a hosted checkout session and returns its redirect URL.
func (p *StripeProvider) CreateSession(in *SessionInput) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.Items)+2)
	for _, it := range in.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
				UnitAmount: stripe.Int64(it.UnitAmount),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}
	lineItems = append(lineItems,
		feeLine("Delivery Fee", in.DeliveryFee),
		feeLine("Tax", in.Tax),
	)

	addr, err := json.Marshal(in.DeliveryAddress)
	if err != nil {
		return "", fmt.Errorf("marshal delivery address: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	params.AddMetadata("user_id", strconv.FormatUint(uint64(in.UserID), 10))
	params.AddMetadata("delivery_address", string(addr))
	params.AddMetadata("delivery_date", in.DeliveryDate)
	params.AddMetadata("special_instructions", in.SpecialInstructions)

	sess, err := session.New(params)
	if err != nil {
		p.logger.Error("stripe session create failed", zap.Error(err))
		return "", err
	}

	p.logger.Info("stripe session created",
		zap.String("session", sess.ID),
		zap.Uint("user", in.UserID))
	return sess.URL, nil
}

// VerifyEvent checks the webhook signature and decodes the event payload.
func VerifyEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, secret)
}

func feeLine(name string, amount int64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
			UnitAmount: stripe.Int64(amount),
		},
		Quantity: stripe.Int64(1),
	}
}
