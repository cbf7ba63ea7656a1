package repositories

import (
	"context"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"gorm.io/gorm"
)

// OrderStore persists order snapshots. CreateOrderWithItems is the only
// write path and must be atomic: the order row, every item row and the
// cart clear commit together or not at all. consumedItemIDs names the
// cart item rows the snapshot was built from; only those rows are
// removed, so a line added to the cart after the snapshot survives the
// checkout instead of vanishing unordered.
type OrderStore interface {
	CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem, cartID string, consumedItemIDs []string) error
	GetOrders(ctx context.Context, sessionID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderStore {
	return &orderRepository{db}
}

func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem, cartID string, consumedItemIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		if len(consumedItemIDs) == 0 {
			return nil
		}
		// The cart row itself persists: it remains the session's active
		// cart, ready for the next order.
		return tx.Where("cart_id = ? AND id IN ?", cartID, consumedItemIDs).Delete(&models.CartItem{}).Error
	})
}

func (r *orderRepository) GetOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
