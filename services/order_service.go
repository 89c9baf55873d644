package services

import (
	"errors"
	"strings"
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService covers the customer's order history and the payment-webhook
// side of the aggregator: turning a paid session into an order row.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Logger   *zap.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, logger *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Logger: logger}
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

// GetByPaymentRef backs the payment-success page: it answers only for the
// order's owner, once the webhook has landed.
func (s *OrderService) GetByPaymentRef(userID uint, ref string) (*entity.Order, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	o, err := s.Repo.FindByPaymentRef(ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

type ConfirmPaymentIn struct {
	SessionID           string
	UserID              uint
	DeliveryAddress     entity.DeliveryAddress
	DeliveryDate        *time.Time
	SpecialInstructions string
}

// ConfirmPayment materializes the order for a completed payment session:
// snapshot the cart into an order plus items, then clear the cart, all in
// one transaction. Replayed webhook deliveries find the existing order by
// session id and return it unchanged.
func (s *OrderService) ConfirmPayment(in *ConfirmPaymentIn) (*entity.Order, error) {
	if existing, err := s.Repo.FindByPaymentRef(in.SessionID); err == nil {
		s.Logger.Info("payment already confirmed",
			zap.String("session", in.SessionID),
			zap.String("order", existing.OrderNumber))
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items, err := s.CartRepo.ListForUser(in.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, fee, tax, total := Totals(items)

	order := entity.Order{
		OrderNumber:         newOrderNumber(),
		UserID:              in.UserID,
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryDate:        in.DeliveryDate,
		SpecialInstructions: in.SpecialInstructions,
		Subtotal:            subtotal,
		DeliveryFee:         fee,
		Tax:                 tax,
		Total:               total,
		Status:              entity.OrderPending,
		PaymentStatus:       entity.PaymentPaid,
		PaymentRef:          in.SessionID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:             order.ID,
				CakeID:              it.CakeID,
				Quantity:            it.Quantity,
				UnitPrice:           it.UnitPrice,
				LineTotal:           roundCents(it.LineTotal()),
				SelectedSize:        it.SelectedSize,
				SelectedFlavor:      it.SelectedFlavor,
				CustomMessage:       it.CustomMessage,
				SpecialInstructions: it.SpecialInstructions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		return s.CartRepo.Clear(tx, in.UserID)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order created",
		zap.String("order", order.OrderNumber),
		zap.Uint("user", in.UserID),
		zap.Float64("total", order.Total))

	return s.Repo.FindByPaymentRef(in.SessionID)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
