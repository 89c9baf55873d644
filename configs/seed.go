package configs

import (
	"log"

	"github.com/NyinakuJoshua/SweetBites/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account on first boot.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCakes loads the starter catalog so a fresh install has something to sell.
func SeedCakes(db *gorm.DB) error {
	cakes := []entity.Cake{
		{
			Name:        "Classic Birthday Cake",
			Description: "Vanilla sponge with buttercream frosting and rainbow sprinkles.",
			BasePrice:   45.00,
			Rating:      4.8, ReviewCount: 124,
			Sizes:    []string{"6 inch", "8 inch", "10 inch"},
			Flavors:  []string{"Vanilla", "Chocolate", "Red Velvet"},
			Category: entity.CategoryBirthday,
			IsActive: true,
		},
		{
			Name:        "Elegant Wedding Cake",
			Description: "Three-tier cake with fondant finish and sugar flowers.",
			BasePrice:   320.00,
			Rating:      4.9, ReviewCount: 58,
			Sizes:    []string{"2 tier", "3 tier", "4 tier"},
			Flavors:  []string{"Vanilla", "Lemon", "Almond"},
			Category: entity.CategoryWedding,
			IsActive: true,
		},
		{
			Name:        "Pumpkin Spice Cake",
			Description: "Autumn favourite with cream cheese frosting.",
			BasePrice:   38.00,
			Rating:      4.6, ReviewCount: 41,
			Sizes:    []string{"6 inch", "8 inch"},
			Flavors:  []string{"Pumpkin Spice"},
			Category: entity.CategorySeasonal,
			IsActive: true,
		},
		{
			Name:        "Chocolate Fudge Slice",
			Description: "A single generous slice of our dark chocolate fudge cake.",
			BasePrice:   6.50,
			Rating:      4.7, ReviewCount: 213,
			Flavors:  []string{"Chocolate"},
			Category: entity.CategorySlice,
			IsActive: true,
		},
		{
			Name:        "Vanilla Cupcake Box",
			Description: "Box of six vanilla cupcakes with assorted toppings.",
			BasePrice:   24.00,
			Rating:      4.5, ReviewCount: 97,
			Flavors:  []string{"Vanilla", "Chocolate", "Strawberry"},
			Category: entity.CategoryCupcakes,
			IsActive: true,
		},
	}

	for i := range cakes {
		if err := db.Where("name = ?", cakes[i].Name).
			FirstOrCreate(&cakes[i]).Error; err != nil {
			return err
		}
	}

	log.Println("starter catalog seeded")
	return nil
}
