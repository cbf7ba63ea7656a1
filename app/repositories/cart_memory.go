package repositories

import (
	"context"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *MemoryStore) GetActiveCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cart := range s.carts {
		if cart.SessionID == sessionID && cart.Status == models.CartStatusActive {
			found := *cart
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mirror the relational unique index on (session_id, status).
	for _, existing := range s.carts {
		if existing.SessionID == cart.SessionID && existing.Status == cart.Status {
			return gorm.ErrDuplicatedKey
		}
	}

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	now := time.Now()
	cart.CreatedAt = now
	cart.UpdatedAt = now

	stored := *cart
	s.carts[cart.ID] = &stored
	s.cartItems[cart.ID] = []models.CartItem{}
	return nil
}

func (s *MemoryStore) GetItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem{}, s.cartItems[cartID]...), nil
}

func (s *MemoryStore) GetItem(ctx context.Context, itemID string) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, items := range s.cartItems {
		for _, item := range items {
			if item.ID == itemID {
				found := item
				return &found, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cartItems[item.CartID]
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			items[i].UpdatedAt = time.Now()
			merged := items[i]
			return &merged, nil
		}
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	s.cartItems[item.CartID] = append(items, *item)
	created := *item
	return &created, nil
}

func (s *MemoryStore) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for cartID, items := range s.cartItems {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Quantity = quantity
				items[i].UpdatedAt = time.Now()
				s.cartItems[cartID] = items
				updated := items[i]
				return &updated, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for cartID, items := range s.cartItems {
		for i := range items {
			if items[i].ID == itemID {
				s.cartItems[cartID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *MemoryStore) ClearItems(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems[cartID] = []models.CartItem{}
	return nil
}
