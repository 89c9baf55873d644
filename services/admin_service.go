package services

import (
	"time"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"gorm.io/gorm"
)

// AdminService drives the order-management dashboard.
type AdminService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CakeRepo  *repository.CakeRepository
}

func NewAdminService(db *gorm.DB, or *repository.OrderRepository, kr *repository.CakeRepository) *AdminService {
	return &AdminService{DB: db, OrderRepo: or, CakeRepo: kr}
}

// Dashboard aggregates are recomputed from scratch on every load; nothing
// is maintained incrementally.
type Dashboard struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int64   `json:"pendingOrders"`
	ActiveCakes   int64   `json:"activeCakes"`
	OrdersToday   int64   `json:"ordersToday"`
}

func (s *AdminService) Dashboard() (*Dashboard, error) {
	d := &Dashboard{}
	var err error

	if d.TotalOrders, err = s.OrderRepo.CountAll(); err != nil {
		return nil, err
	}
	if d.TotalRevenue, err = s.OrderRepo.SumRevenue(); err != nil {
		return nil, err
	}
	d.TotalRevenue = roundCents(d.TotalRevenue)
	if d.PendingOrders, err = s.OrderRepo.CountByStatus(entity.OrderPending); err != nil {
		return nil, err
	}
	if d.ActiveCakes, err = s.CakeRepo.CountActive(); err != nil {
		return nil, err
	}
	startOfDay := time.Now().Truncate(24 * time.Hour)
	if d.OrdersToday, err = s.OrderRepo.CountSince(startOfDay); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *AdminService) ListOrders() ([]entity.Order, error) {
	return s.OrderRepo.ListAll()
}
