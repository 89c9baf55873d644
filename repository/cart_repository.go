package repository

import (
	"errors"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser reloads the full cart, newest additions first. This is the
// sole read path; every mutation goes through it again afterwards.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("Cake").
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// FindByKey looks up the one row allowed per (user, cake, size, flavor).
func (r *CartRepository) FindByKey(userID, cakeID uint, size, flavor string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where(
		"user_id = ? AND cake_id = ? AND selected_size = ? AND selected_flavor = ?",
		userID, cakeID, size, flavor,
	).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) GetForUser(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Create(row).Error
}

func (r *CartRepository) Save(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Save(row).Error
}

// Remove deletes one of the user's rows; deleting a missing id is fine.
func (r *CartRepository) Remove(tx *gorm.DB, userID, itemID uint) error {
	return tx.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	err := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
