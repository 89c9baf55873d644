package services

import (
	"testing"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"github.com/NyinakuJoshua/SweetBites/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCakeService(db *gorm.DB) *CakeService {
	return NewCakeService(repository.NewCakeRepository(db))
}

func TestListFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := newCakeService(db)

	seedCake(t, db, "Berry Cake", 30.00)
	seedCake(t, db, "Apple Cake", 50.00)
	retired := seedCake(t, db, "Old Cake", 20.00)
	require.NoError(t, db.Model(retired).Update("is_active", false).Error)

	wedding := seedCake(t, db, "Tiered Cake", 300.00)
	require.NoError(t, db.Model(wedding).Update("category", entity.CategoryWedding).Error)

	// Default sort: name, inactive rows excluded.
	all, err := svc.List(repository.CakeListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Apple Cake", all[0].Name)

	// Category filter.
	birthday, err := svc.List(repository.CakeListOpts{Category: "birthday"})
	require.NoError(t, err)
	assert.Len(t, birthday, 2)

	// Price ceiling plus cheapest-first sort.
	cheap, err := svc.List(repository.CakeListOpts{MaxPrice: 60, Sort: "price_asc"})
	require.NoError(t, err)
	require.Len(t, cheap, 2)
	assert.Equal(t, "Berry Cake", cheap[0].Name)

	// Search hits name or description.
	found, err := svc.List(repository.CakeListOpts{Search: "Berry"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newCakeService(db)

	_, err := svc.List(repository.CakeListOpts{Category: "pie"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetInactiveCakeIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCakeService(db)

	cake := seedCake(t, db, "Old Cake", 20.00)
	require.NoError(t, db.Model(cake).Update("is_active", false).Error)

	_, err := svc.Get(cake.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
