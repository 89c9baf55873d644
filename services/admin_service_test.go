package services

import (
	"testing"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	orders := newOrderService(db)
	svc := newAdminService(db)

	a := seedCake(t, db, "Cake A", 45.00)
	seedCake(t, db, "Cake B", 24.00)
	retired := seedCake(t, db, "Retired", 30.00)
	require.NoError(t, db.Model(retired).Update("is_active", false).Error)

	_, err := cart.Add(1, &AddItemIn{CakeID: a.ID, Quantity: 1})
	require.NoError(t, err)
	first, err := orders.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_1", UserID: 1})
	require.NoError(t, err)

	_, err = cart.Add(2, &AddItemIn{CakeID: a.ID, Quantity: 2})
	require.NoError(t, err)
	second, err := orders.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_2", UserID: 2})
	require.NoError(t, err)

	// Move one order past pending.
	_, err = svc.UpdateOrderStatus(first.ID, entity.OrderConfirmed)
	require.NoError(t, err)

	d, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.TotalOrders)
	assert.Equal(t, roundCents(first.Total+second.Total), d.TotalRevenue)
	assert.Equal(t, int64(1), d.PendingOrders)
	assert.Equal(t, int64(2), d.ActiveCakes)
	assert.Equal(t, int64(2), d.OrdersToday)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	cart := newCartService(db)
	orders := newOrderService(db)
	svc := newAdminService(db)
	cake := seedCake(t, db, "Cake A", 10.00)

	_, err := cart.Add(1, &AddItemIn{CakeID: cake.ID})
	require.NoError(t, err)
	_, err = orders.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_old", UserID: 1})
	require.NoError(t, err)

	_, err = cart.Add(1, &AddItemIn{CakeID: cake.ID})
	require.NoError(t, err)
	newest, err := orders.ConfirmPayment(&ConfirmPaymentIn{SessionID: "cs_new", UserID: 1})
	require.NoError(t, err)

	all, err := svc.ListOrders()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newest.ID, all[0].ID)
	require.Len(t, all[0].Items, 1)
	assert.Equal(t, cake.ID, all[0].Items[0].CakeID)
}
