package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The single lock makes the order insert, item inserts and cart clear
// one atomic step, matching the relational store's transaction. Only
// the consumed cart rows are removed; lines added after the snapshot
// stay in the cart.
func (s *MemoryStore) CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem, cartID string, consumedItemIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	s.orders[order.ID] = &stored

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID
		item.CreatedAt = now
		orderItems = append(orderItems, item)
	}
	s.orderItems[order.ID] = orderItems

	consumed := make(map[string]bool, len(consumedItemIDs))
	for _, id := range consumedItemIDs {
		consumed[id] = true
	}
	remaining := []models.CartItem{}
	for _, item := range s.cartItems[cartID] {
		if !consumed[item.ID] {
			remaining = append(remaining, item)
		}
	}
	s.cartItems[cartID] = remaining
	return nil
}

func (s *MemoryStore) GetOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := []models.Order{}
	for _, order := range s.orders {
		if order.SessionID == sessionID {
			orders = append(orders, *order)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *order
	return &found, nil
}

func (s *MemoryStore) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.OrderItem{}, s.orderItems[orderID]...), nil
}
