package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const CartStatusActive = "active"

// Cart holds one shopper's in-progress selection. The composite unique
// index on (session_id, status) is what keeps concurrent first touches
// from minting two active carts for the same session.
type Cart struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	UserID    *string   `gorm:"size:36;index" json:"user_id"`
	SessionID string    `gorm:"size:255;uniqueIndex:idx_carts_session_status" json:"session_id"`
	Status    string    `gorm:"size:50;default:active;uniqueIndex:idx_carts_session_status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// CartItem is one line within a cart. UnitPrice is snapshotted when the
// line is first added and is not re-read from the product afterwards.
type CartItem struct {
	ID        string          `gorm:"size:36;primaryKey" json:"id"`
	CartID    string          `gorm:"size:36;not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	ProductID int             `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
