package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/JBlizzard-sketch/Autoscraper/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newCartService() (*services.CartService, *repositories.MemoryStore) {
	store := repositories.NewMemoryStore()
	return services.NewCartService(store, zap.NewNop()), store
}

func TestGetOrCreateActiveCartIsIdempotent(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	first, err := svc.GetOrCreateActiveCart(ctx, "session-a")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, models.CartStatusActive, first.Status)

	second, err := svc.GetOrCreateActiveCart(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.GetOrCreateActiveCart(ctx, "session-b")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestAddItemValidation(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	cases := []struct {
		name      string
		productID int
		quantity  int
		unitPrice decimal.Decimal
	}{
		{"missing product id", 0, 1, price("100")},
		{"zero quantity", 7, 0, price("100")},
		{"negative quantity", 7, -2, price("100")},
		{"negative price", 7, 1, price("-1")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, "session-a", tc.productID, tc.quantity, tc.unitPrice)
			var verr *services.ValidationError
			assert.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
		})
	}

	// Nothing was created for the session by the failed calls above.
	cart, items, err := svc.GetCart(ctx, "session-a")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, items)
}

func TestAddItemMergesRepeatedProduct(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "session-a", 7, 2, price("500.00"))
	require.NoError(t, err)

	merged, err := svc.AddItem(ctx, "session-a", 7, 3, price("500.00"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	_, items, err := svc.GetCart(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, items, 1)

	count, total := services.Summarize(items)
	assert.Equal(t, 5, count)
	assert.True(t, total.Equal(price("2500.00")))
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "session-a", 7, 2, price("500.00"))
	require.NoError(t, err)

	updated, err := svc.UpdateItemQuantity(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)

	t.Run("zero is rejected not treated as delete", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(ctx, item.ID, 0)
		var verr *services.ValidationError
		assert.True(t, errors.As(err, &verr))

		_, items, err := svc.GetCart(ctx, "session-a")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(ctx, "missing-item", 3)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "session-a", 7, 2, price("500.00"))
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, item.ID))
	assert.ErrorIs(t, svc.RemoveItem(ctx, item.ID), services.ErrNotFound)
}

func TestClearCart(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	t.Run("no active cart", func(t *testing.T) {
		assert.ErrorIs(t, svc.ClearCart(ctx, "session-untouched"), services.ErrNotFound)
	})

	t.Run("cart survives clearing", func(t *testing.T) {
		_, err := svc.AddItem(ctx, "session-a", 7, 2, price("500.00"))
		require.NoError(t, err)

		require.NoError(t, svc.ClearCart(ctx, "session-a"))

		cart, items, err := svc.GetCart(ctx, "session-a")
		require.NoError(t, err)
		assert.Equal(t, models.CartStatusActive, cart.Status)
		assert.Empty(t, items)
	})
}

func TestSummarize(t *testing.T) {
	count, total := services.Summarize(nil)
	assert.Zero(t, count)
	assert.True(t, total.IsZero())

	count, total = services.Summarize([]models.CartItem{
		{Quantity: 2, UnitPrice: price("19.99")},
		{Quantity: 1, UnitPrice: price("5.00")},
	})
	assert.Equal(t, 3, count)
	assert.True(t, total.Equal(price("44.98")))
}
