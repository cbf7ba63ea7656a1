package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Rows are created by the offline import
// pipeline and are read-only at request time.
type Product struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:500;not null" json:"name"`
	Slug           string          `gorm:"size:500;not null;uniqueIndex" json:"slug"`
	Sku            string          `gorm:"size:100" json:"sku"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	VehicleMake    string          `gorm:"size:100" json:"vehicle_make"`
	VehicleModel   string          `gorm:"size:100" json:"vehicle_model"`
	YearRange      string          `gorm:"size:50" json:"year_range"`
	EngineSize     string          `gorm:"size:50" json:"engine_size"`
	BrandID        *int            `gorm:"index" json:"brand_id"`
	CategoryID     *int            `gorm:"index" json:"category_id"`
	SubcategoryID  *int            `gorm:"index" json:"subcategory_id"`
	OEMPartNumber  string          `gorm:"size:100" json:"oem_part_number"`
	Description    string          `gorm:"type:text" json:"description"`
	ProductURL     string          `gorm:"type:text" json:"product_url"`
	ImageURL       string          `gorm:"type:text" json:"image_url"`
	StockQuantity  int             `gorm:"default:0" json:"stock_quantity"`
	LeadTimeDays   int             `gorm:"default:0" json:"lead_time_days"`
	WarrantyMonths int             `gorm:"default:0" json:"warranty_months"`
	Available      bool            `gorm:"default:true" json:"available"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID           string    `gorm:"size:36;primaryKey" json:"id"`
	ProductID    int       `gorm:"not null;index" json:"product_id"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
