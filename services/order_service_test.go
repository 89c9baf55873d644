package services

import (
	"testing"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentCreatesOrderAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	svc := newOrderService(db)
	a := seedCake(t, db, "Cake A", 45.00)
	b := seedCake(t, db, "Cake B", 24.00)

	_, err := cart.Add(1, &AddItemIn{CakeID: a.ID, Quantity: 1, SelectedFlavor: "Vanilla"})
	require.NoError(t, err)
	_, err = cart.Add(1, &AddItemIn{CakeID: b.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := svc.ConfirmPayment(&ConfirmPaymentIn{
		SessionID:       "cs_test_1",
		UserID:          1,
		DeliveryAddress: entity.DeliveryAddress{Street: "123 Main St", City: "New York"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, 93.00, order.Subtotal)
	assert.Equal(t, 5.99, order.DeliveryFee)
	assert.Equal(t, 7.44, order.Tax)
	assert.Equal(t, 106.43, order.Total)
	require.Len(t, order.Items, 2)

	for _, it := range order.Items {
		assert.Equal(t, it.UnitPrice*float64(it.Quantity), it.LineTotal)
	}

	view, err := cart.Get(1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	svc := newOrderService(db)
	cake := seedCake(t, db, "Cake A", 45.00)

	_, err := cart.Add(1, &AddItemIn{CakeID: cake.ID, Quantity: 1})
	require.NoError(t, err)

	in := &ConfirmPaymentIn{SessionID: "cs_test_replay", UserID: 1}
	first, err := svc.ConfirmPayment(in)
	require.NoError(t, err)

	// Replayed webhook delivery: same session, cart already cleared.
	second, err := svc.ConfirmPayment(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OrderNumber, second.OrderNumber)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConfirmPaymentEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_test_empty", UserID: 1})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestListForUserIsScoped(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	svc := newOrderService(db)
	cake := seedCake(t, db, "Cake A", 10.00)

	_, err := cart.Add(1, &AddItemIn{CakeID: cake.ID})
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_u1", UserID: 1})
	require.NoError(t, err)

	_, err = cart.Add(2, &AddItemIn{CakeID: cake.ID})
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_u2", UserID: 2})
	require.NoError(t, err)

	mine, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(1), mine[0].UserID)

	// Detail lookups never cross owners.
	theirs, err := svc.ListForUser(2)
	require.NoError(t, err)
	_, err = svc.DetailForUser(1, theirs[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByPaymentRefScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	svc := newOrderService(db)
	cake := seedCake(t, db, "Cake A", 10.00)

	_, err := cart.Add(1, &AddItemIn{CakeID: cake.ID})
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_owner", UserID: 1})
	require.NoError(t, err)

	order, err := svc.GetByPaymentRef(1, "cs_owner")
	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)

	_, err = svc.GetByPaymentRef(2, "cs_owner")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByPaymentRef(1, "cs_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
