package services

import (
	"errors"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"gorm.io/gorm"
)

// CartService implements the write-then-reload contract: every mutation
// performs its write and then re-fetches the whole cart, which is what the
// caller gets back. The reload is the only source of truth; nothing is
// patched incrementally on the client side.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	CakeRepo *repository.CakeRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, kr *repository.CakeRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CakeRepo: kr}
}

// CartView is the cart as presented: persisted rows plus derived values
// recomputed on every read, never cached on their own.
type CartView struct {
	Items       []entity.CartItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	TotalAmount float64           `json:"totalAmount"`
}

type AddItemIn struct {
	CakeID              uint   `json:"cakeId" binding:"required"`
	Quantity            int    `json:"quantity"`
	SelectedSize        string `json:"selectedSize"`
	SelectedFlavor      string `json:"selectedFlavor"`
	CustomMessage       string `json:"customMessage"`
	SpecialInstructions string `json:"specialInstructions"`
}

type UpdateItemIn struct {
	Quantity            *int    `json:"quantity"`
	SelectedSize        *string `json:"selectedSize"`
	SelectedFlavor      *string `json:"selectedFlavor"`
	CustomMessage       *string `json:"customMessage"`
	SpecialInstructions *string `json:"specialInstructions"`
}

// Get reloads the cart. No identity means an empty cart, not an error.
func (s *CartService) Get(userID uint) (*CartView, error) {
	if userID == 0 {
		return &CartView{Items: []entity.CartItem{}}, nil
	}

	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: items}
	for _, it := range items {
		view.ItemCount += it.Quantity
		view.TotalAmount += it.UnitPrice * float64(it.Quantity)
	}
	view.TotalAmount = roundCents(view.TotalAmount)
	return view, nil
}

// Add puts a cake in the cart. A second add with the same (cake, size,
// flavor) key merges quantities through the update path instead of
// creating another row. The unit price is fixed here, from the catalog
// price at this moment; later catalog changes never touch existing rows.
func (s *CartService) Add(userID uint, in *AddItemIn) (*CartView, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	cake, err := s.CakeRepo.GetActive(in.CakeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.SelectedSize != "" && !cake.HasSize(in.SelectedSize) {
		return nil, ErrInvalidOption
	}
	if in.SelectedFlavor != "" && !cake.HasFlavor(in.SelectedFlavor) {
		return nil, ErrInvalidOption
	}

	existing, err := s.CartRepo.FindByKey(userID, cake.ID, in.SelectedSize, in.SelectedFlavor)
	if err == nil {
		merged := existing.Quantity + in.Quantity
		return s.Update(userID, existing.ID, &UpdateItemIn{Quantity: &merged})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := &entity.CartItem{
		UserID:              userID,
		CakeID:              cake.ID,
		Quantity:            in.Quantity,
		UnitPrice:           cake.BasePrice,
		SelectedSize:        in.SelectedSize,
		SelectedFlavor:      in.SelectedFlavor,
		CustomMessage:       in.CustomMessage,
		SpecialInstructions: in.SpecialInstructions,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Create(tx, row)
	}); err != nil {
		return nil, err
	}

	return s.Get(userID)
}

// Update partially edits one row. Size/flavor membership is not re-checked
// here; that is the add path's job. Quantity zero or below means remove.
func (s *CartService) Update(userID, itemID uint, in *UpdateItemIn) (*CartView, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}

	if in.Quantity != nil && *in.Quantity <= 0 {
		return s.Remove(userID, itemID)
	}

	item, err := s.CartRepo.GetForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.SelectedSize != nil {
		item.SelectedSize = *in.SelectedSize
	}
	if in.SelectedFlavor != nil {
		item.SelectedFlavor = *in.SelectedFlavor
	}
	if in.CustomMessage != nil {
		item.CustomMessage = *in.CustomMessage
	}
	if in.SpecialInstructions != nil {
		item.SpecialInstructions = *in.SpecialInstructions
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Save(tx, item)
	}); err != nil {
		return nil, err
	}

	return s.Get(userID)
}

// Remove deletes one row. Removing an id that is already gone is not an error.
func (s *CartService) Remove(userID, itemID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Remove(tx, userID, itemID)
	}); err != nil {
		return nil, err
	}

	return s.Get(userID)
}

// Clear empties the cart; a no-op without an identity.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
