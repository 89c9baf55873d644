package services

import (
	"errors"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"gorm.io/gorm"
)

// UpdateOrderStatus advances an order along the fulfilment chain. The
// transition table is enforced here, not in the dashboard buttons, and the
// guarded UPDATE re-checks the expected current status so two admins
// racing on the same order cannot both win.
func (s *AdminService) UpdateOrderStatus(orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidTransition
	}

	o, err := s.OrderRepo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.OrderRepo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.OrderRepo.GetOrder(orderID)
}
