package repository

import (
	"github.com/NyinakuJoshua/SweetBites/entity"
	"gorm.io/gorm"
)

type CakeRepository struct{ DB *gorm.DB }

func NewCakeRepository(db *gorm.DB) *CakeRepository { return &CakeRepository{DB: db} }

// CakeListOpts mirrors the storefront category page controls.
type CakeListOpts struct {
	Category string
	Search   string
	MaxPrice float64
	Sort     string // name | price_asc | price_desc | rating
}

func (r *CakeRepository) List(opts CakeListOpts) ([]entity.Cake, error) {
	q := r.DB.Model(&entity.Cake{}).Where("is_active = ?", true)

	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if opts.MaxPrice > 0 {
		q = q.Where("base_price <= ?", opts.MaxPrice)
	}

	switch opts.Sort {
	case "price_asc":
		q = q.Order("base_price ASC")
	case "price_desc":
		q = q.Order("base_price DESC")
	case "rating":
		q = q.Order("rating DESC")
	default:
		q = q.Order("name ASC")
	}

	var cakes []entity.Cake
	err := q.Find(&cakes).Error
	return cakes, err
}

// GetActive returns a cake shoppers may still order.
func (r *CakeRepository) GetActive(id uint) (*entity.Cake, error) {
	var cake entity.Cake
	if err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&cake).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

func (r *CakeRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Cake{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
