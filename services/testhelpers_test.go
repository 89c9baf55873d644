package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database. The name keeps tests from
// sharing state through sqlite's shared cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Cake{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedCake(t *testing.T, db *gorm.DB, name string, price float64) *entity.Cake {
	t.Helper()
	cake := &entity.Cake{
		Name:      name,
		BasePrice: price,
		Sizes:     []string{"6 inch", "8 inch"},
		Flavors:   []string{"Vanilla", "Chocolate"},
		Category:  entity.CategoryBirthday,
		IsActive:  true,
	}
	require.NoError(t, db.Create(cake).Error)
	return cake
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewCakeRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		zap.NewNop())
}

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(db,
		repository.NewOrderRepository(db),
		repository.NewCakeRepository(db))
}
