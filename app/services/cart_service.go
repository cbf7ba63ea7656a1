package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartService is the cart engine: one active cart per session,
// merge-or-insert line semantics, price snapshots taken at add time.
// All identity flows in through explicit parameters; the service keeps
// no per-request state.
type CartService struct {
	carts  repositories.CartStore
	logger *zap.Logger
}

func NewCartService(carts repositories.CartStore, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, logger: logger}
}

// GetOrCreateActiveCart lazily creates the session's active cart. When
// a concurrent first touch wins the uniqueness race on
// (session_id, status) the duplicate-key failure is absorbed by
// re-reading once: the desired end state already exists.
func (s *CartService) GetOrCreateActiveCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.carts.GetActiveCart(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get active cart: %w", err)
	}

	cart = &models.Cart{SessionID: sessionID, Status: models.CartStatusActive}
	if err := s.carts.CreateCart(ctx, cart); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Debug("cart creation lost the race, re-reading", zap.String("session_id", sessionID))
			return s.carts.GetActiveCart(ctx, sessionID)
		}
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return cart, nil
}

// GetCart returns the session's active cart with its items, creating
// the cart on first touch.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, []models.CartItem, error) {
	cart, err := s.GetOrCreateActiveCart(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.carts.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get cart items: %w", err)
	}
	return cart, items, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID, quantity int, unitPrice decimal.Decimal) (*models.CartItem, error) {
	if productID <= 0 {
		return nil, NewValidationError("product_id", "product id is required")
	}
	if quantity < 1 {
		return nil, NewValidationError("quantity", "quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, NewValidationError("unit_price", "price cannot be negative")
	}

	cart, err := s.GetOrCreateActiveCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.carts.UpsertItem(ctx, &models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	return item, nil
}

// UpdateItemQuantity sets an absolute quantity. Zero is rejected rather
// than treated as delete; callers wanting removal must call RemoveItem.
func (s *CartService) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, NewValidationError("quantity", "quantity must be at least 1")
	}

	item, err := s.carts.UpdateItemQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	err := s.carts.RemoveItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// ClearCart empties the session's active cart; the cart row persists.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	cart, err := s.carts.GetActiveCart(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get active cart: %w", err)
	}
	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	return nil
}

// Summarize derives the cart's item count and total. Neither value is
// ever stored.
func Summarize(items []models.CartItem) (count int, total decimal.Decimal) {
	for _, item := range items {
		count += item.Quantity
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return count, total
}
