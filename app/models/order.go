package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPending = "pending"

	// Orders are confirmed over WhatsApp; the storefront only records the
	// channel tag, it never talks to the messaging service itself.
	PaymentMethodWhatsapp = "whatsapp"
)

// Order is an immutable snapshot taken from a cart at checkout. Monetary
// fields are frozen at creation time and never recomputed.
type Order struct {
	ID                string          `gorm:"size:36;primaryKey" json:"id"`
	UserID            *string         `gorm:"size:36;index" json:"user_id"`
	SessionID         string          `gorm:"size:255;index" json:"session_id"`
	OrderNumber       string          `gorm:"size:50;not null;uniqueIndex" json:"order_number"`
	CustomerName      string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail     string          `gorm:"size:255" json:"customer_email"`
	CustomerPhone     string          `gorm:"size:20;not null" json:"customer_phone"`
	DeliveryAddress   string          `gorm:"type:text" json:"delivery_address"`
	DeliveryCounty    string          `gorm:"size:100" json:"delivery_county"`
	DeliveryTown      string          `gorm:"size:100" json:"delivery_town"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status            string          `gorm:"size:50;default:pending" json:"status"`
	PaymentMethod     string          `gorm:"size:50" json:"payment_method"`
	PaymentStatus     string          `gorm:"size:50;default:pending" json:"payment_status"`
	WhatsappSent      bool            `gorm:"default:false" json:"whatsapp_sent"`
	WhatsappMessageID string          `gorm:"size:255" json:"whatsapp_message_id"`
	Notes             string          `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// OrderItem carries the product name and SKU as literal strings so the
// order survives later catalog edits or product deletion.
type OrderItem struct {
	ID          string          `gorm:"size:36;primaryKey" json:"id"`
	OrderID     string          `gorm:"size:36;not null;index" json:"order_id"`
	ProductID   *int            `gorm:"index" json:"product_id"`
	ProductName string          `gorm:"size:500;not null" json:"product_name"`
	ProductSku  string          `gorm:"size:100" json:"product_sku"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
