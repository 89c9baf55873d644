package configs

import (
	"github.com/NyinakuJoshua/SweetBites/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Cake{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
