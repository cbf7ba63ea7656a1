package repositories

import (
	"context"
	"time"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartStore persists carts and their lines. Implementations must report
// gorm.ErrRecordNotFound for missing rows and gorm.ErrDuplicatedKey
// when an insert loses the active-cart uniqueness race, so the service
// layer can translate uniformly.
type CartStore interface {
	GetActiveCart(ctx context.Context, sessionID string) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetItems(ctx context.Context, cartID string) ([]models.CartItem, error)
	GetItem(ctx context.Context, itemID string) (*models.CartItem, error)
	// UpsertItem is the merge-or-insert for one cart line: if a row for
	// (cart_id, product_id) exists its quantity is incremented
	// atomically, otherwise the row is created with the caller's price
	// snapshot. The resulting row is returned.
	UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	ClearItems(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartStore {
	return &cartRepository{db}
}

func (r *cartRepository) GetActiveCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND status = ?", sessionID, models.CartStatusActive).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// The increment happens inside the store's conflict resolution, not as
// a read-then-write pair, so two rapid adds for the same product cannot
// lose an update.
func (r *cartRepository) UpsertItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + VALUES(quantity)"),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	var merged models.CartItem
	err = r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
		First(&merged).Error
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
