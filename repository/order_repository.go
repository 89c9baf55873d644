package repository

import (
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Cake").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Cake").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByPaymentRef(ref string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("payment_ref = ?", ref).
		Preload("Items").
		Preload("Items.Cake").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListAll is the admin view: every order, newest first, with customer info.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Cake").
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard advances the status only when the row still carries the
// expected current status; RowsAffected tells the caller whether it won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Aggregates (recomputed per call) ----------------

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *OrderRepository) SumRevenue() (float64, error) {
	var row struct{ Revenue float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Scan(&row).Error
	return row.Revenue, err
}

func (r *OrderRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}
