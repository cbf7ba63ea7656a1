package migrations

import (
	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Brand{}, &models.Category{}, &models.Subcategory{}, &models.Product{}, &models.ProductImage{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}, &models.BlogCategory{}, &models.BlogPost{})
}
