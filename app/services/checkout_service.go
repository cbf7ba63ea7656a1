package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/nanorand/nanorand"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerInfo is the checkout contact payload, validated before any
// write happens.
type CustomerInfo struct {
	Name            string
	Phone           string
	Email           string
	DeliveryAddress string
	DeliveryCounty  string
	DeliveryTown    string
	Notes           string
}

// CheckoutService is the order engine. PlaceOrder freezes the cart's
// lines into an immutable snapshot: names and prices on the order never
// change again, whatever happens to the catalog afterwards.
type CheckoutService struct {
	carts    repositories.CartStore
	catalog  repositories.CatalogStore
	orders   repositories.OrderStore
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewCheckoutService(carts repositories.CartStore, catalog repositories.CatalogStore, orders repositories.OrderStore, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		catalog:  catalog,
		orders:   orders,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *CheckoutService) validateCustomer(info CustomerInfo) error {
	if info.Name == "" {
		return NewValidationError("customer_name", "customer name is required")
	}
	if len(info.Phone) < 10 {
		return NewValidationError("customer_phone", "valid phone number is required")
	}
	if info.Email != "" {
		if err := s.validate.Var(info.Email, "email"); err != nil {
			return NewValidationError("customer_email", "invalid email")
		}
	}
	return nil
}

// NewOrderNumber derives a human-presentable, globally unique order
// number from the current time plus a random suffix.
func (s *CheckoutService) NewOrderNumber() (string, error) {
	suffix, err := nanorand.Gen(6)
	if err != nil {
		return "", fmt.Errorf("order number suffix: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%s", s.now().UnixMilli(), suffix), nil
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, info CustomerInfo) (*models.Order, []models.OrderItem, error) {
	if err := s.validateCustomer(info); err != nil {
		return nil, nil, err
	}

	cart, err := s.carts.GetActiveCart(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEmptyCart
		}
		return nil, nil, fmt.Errorf("get active cart: %w", err)
	}

	cartItems, err := s.carts.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get cart items: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, nil, ErrEmptyCart
	}

	_, total := Summarize(cartItems)

	orderNumber, err := s.NewOrderNumber()
	if err != nil {
		return nil, nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	consumedItemIDs := make([]string, 0, len(cartItems))
	for _, item := range cartItems {
		consumedItemIDs = append(consumedItemIDs, item.ID)
		// Single live lookup, taken at this moment; the order keeps the
		// literal strings even if the product later disappears.
		productName := "Unknown Product"
		productSku := ""
		if product, err := s.catalog.GetProduct(ctx, item.ProductID); err == nil {
			productName = product.Name
			productSku = product.Sku
		}

		productID := item.ProductID
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   &productID,
			ProductName: productName,
			ProductSku:  productSku,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	order := &models.Order{
		SessionID:       sessionID,
		OrderNumber:     orderNumber,
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		CustomerEmail:   info.Email,
		DeliveryAddress: info.DeliveryAddress,
		DeliveryCounty:  info.DeliveryCounty,
		DeliveryTown:    info.DeliveryTown,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   models.PaymentMethodWhatsapp,
		PaymentStatus:   models.PaymentStatusPending,
		Notes:           info.Notes,
	}

	if err := s.orders.CreateOrderWithItems(ctx, order, orderItems, cart.ID, consumedItemIDs); err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.String("session_id", sessionID),
		zap.String("total", total.StringFixed(2)),
		zap.Int("items", len(orderItems)),
	)

	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get order items: %w", err)
	}
	return order, items, nil
}

func (s *CheckoutService) GetOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	orders, err := s.orders.GetOrders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id string) (*models.Order, []models.OrderItem, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("get order: %w", err)
	}
	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get order items: %w", err)
	}
	return order, items, nil
}
