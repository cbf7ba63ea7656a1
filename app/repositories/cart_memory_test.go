package repositories_test

import (
	"context"
	"testing"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartWithStore(t *testing.T) (*repositories.MemoryStore, *models.Cart) {
	t.Helper()
	store := repositories.NewMemoryStore()
	cart := &models.Cart{SessionID: "session-a", Status: models.CartStatusActive}
	require.NoError(t, store.CreateCart(context.Background(), cart))
	require.NotEmpty(t, cart.ID)
	return store, cart
}

func TestCreateCartRejectsSecondActiveCart(t *testing.T) {
	store, _ := newCartWithStore(t)

	dup := &models.Cart{SessionID: "session-a", Status: models.CartStatusActive}
	err := store.CreateCart(context.Background(), dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetActiveCart(t *testing.T) {
	store, cart := newCartWithStore(t)

	found, err := store.GetActiveCart(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)

	_, err = store.GetActiveCart(context.Background(), "session-b")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpsertItemMergesQuantities(t *testing.T) {
	store, cart := newCartWithStore(t)
	ctx := context.Background()

	first, err := store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 7, Quantity: 2, UnitPrice: price("500.00")})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	merged, err := store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 7, Quantity: 3, UnitPrice: price("500.00")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID, "same line row, not a new one")
	assert.Equal(t, 5, merged.Quantity)

	items, err := store.GetItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(price("500.00")), "unit price keeps first snapshot")
}

func TestUpdateItemQuantitySetsAbsoluteValue(t *testing.T) {
	store, cart := newCartWithStore(t)
	ctx := context.Background()

	item, err := store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 7, Quantity: 2, UnitPrice: price("500.00")})
	require.NoError(t, err)

	updated, err := store.UpdateItemQuantity(ctx, item.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)

	_, err = store.UpdateItemQuantity(ctx, "missing-item", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRemoveItem(t *testing.T) {
	store, cart := newCartWithStore(t)
	ctx := context.Background()

	item, err := store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 7, Quantity: 1, UnitPrice: price("500.00")})
	require.NoError(t, err)

	require.NoError(t, store.RemoveItem(ctx, item.ID))

	items, err := store.GetItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, store.RemoveItem(ctx, item.ID), gorm.ErrRecordNotFound)
}

func TestClearItemsKeepsCart(t *testing.T) {
	store, cart := newCartWithStore(t)
	ctx := context.Background()

	_, err := store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 7, Quantity: 1, UnitPrice: price("500.00")})
	require.NoError(t, err)
	_, err = store.UpsertItem(ctx, &models.CartItem{CartID: cart.ID, ProductID: 8, Quantity: 2, UnitPrice: price("950.00")})
	require.NoError(t, err)

	require.NoError(t, store.ClearItems(ctx, cart.ID))

	items, err := store.GetItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	found, err := store.GetActiveCart(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)
}
