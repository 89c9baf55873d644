package services

import (
	"errors"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"gorm.io/gorm"
)

type CakeService struct {
	Repo *repository.CakeRepository
}

func NewCakeService(repo *repository.CakeRepository) *CakeService {
	return &CakeService{Repo: repo}
}

func (s *CakeService) List(opts repository.CakeListOpts) ([]entity.Cake, error) {
	if opts.Category != "" && !entity.CakeCategory(opts.Category).Valid() {
		return nil, ErrNotFound
	}
	return s.Repo.List(opts)
}

func (s *CakeService) Get(id uint) (*entity.Cake, error) {
	cake, err := s.Repo.GetActive(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cake, err
}
