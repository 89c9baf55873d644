package services

import (
	"testing"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber:   "ORD-" + string(status) + "-1",
		UserID:        1,
		Total:         50,
		Status:        status,
		PaymentStatus: entity.PaymentPaid,
		PaymentRef:    "cs_" + string(status),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestStatusAdvancesAlongTheChain(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	o := seedOrder(t, db, entity.OrderPending)

	for _, next := range []entity.OrderStatus{
		entity.OrderConfirmed,
		entity.OrderPreparing,
		entity.OrderReady,
		entity.OrderDelivered,
	} {
		updated, err := svc.UpdateOrderStatus(o.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestStatusSkipIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	o := seedOrder(t, db, entity.OrderPending)

	_, err := svc.UpdateOrderStatus(o.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Row untouched.
	reloaded, err := svc.OrderRepo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, reloaded.Status)
}

func TestCancelOnlyBeforePreparation(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	pending := seedOrder(t, db, entity.OrderPending)
	_, err := svc.UpdateOrderStatus(pending.ID, entity.OrderCancelled)
	assert.NoError(t, err)

	confirmed := seedOrder(t, db, entity.OrderConfirmed)
	_, err = svc.UpdateOrderStatus(confirmed.ID, entity.OrderCancelled)
	assert.NoError(t, err)

	preparing := seedOrder(t, db, entity.OrderPreparing)
	_, err = svc.UpdateOrderStatus(preparing.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminalStatesAllowNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	delivered := seedOrder(t, db, entity.OrderDelivered)
	_, err := svc.UpdateOrderStatus(delivered.ID, entity.OrderPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled := seedOrder(t, db, entity.OrderCancelled)
	_, err = svc.UpdateOrderStatus(cancelled.ID, entity.OrderConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBackwardsTransitionIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	o := seedOrder(t, db, entity.OrderReady)

	_, err := svc.UpdateOrderStatus(o.ID, entity.OrderPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUnknownStatusValueIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	o := seedOrder(t, db, entity.OrderPending)

	_, err := svc.UpdateOrderStatus(o.ID, entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)

	_, err := svc.UpdateOrderStatus(9999, entity.OrderConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
