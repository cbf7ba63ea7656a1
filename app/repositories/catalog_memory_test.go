package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedCatalog(t *testing.T) *repositories.MemoryStore {
	t.Helper()

	store := repositories.NewMemoryStore()
	store.SeedCatalog(
		[]models.Product{
			{ID: 1, Name: "Toyota Corolla Brake Pad Set", Description: "Front axle ceramic pads", VehicleMake: "Toyota", VehicleModel: "Corolla", OEMPartNumber: "04465-02220", Price: price("4500.00"), CategoryID: intPtr(1), SubcategoryID: intPtr(1), BrandID: intPtr(1), Available: true},
			{ID: 2, Name: "Nissan X-Trail Oil Filter", Description: "Spin-on filter for MR20DE", VehicleMake: "Nissan", VehicleModel: "X-Trail", OEMPartNumber: "15208-65F0A", Price: price("950.00"), CategoryID: intPtr(2), SubcategoryID: intPtr(3), BrandID: intPtr(2), Available: true},
			{ID: 3, Name: "Subaru Forester Air Filter", VehicleMake: "Subaru", VehicleModel: "Forester", Price: price("1600.00"), CategoryID: intPtr(2), SubcategoryID: intPtr(4), BrandID: intPtr(2), Available: true},
			{ID: 4, Name: "Toyota Prado Shock Absorber", Description: "Front gas shock", VehicleMake: "Toyota", VehicleModel: "Prado", Price: price("14500.00"), CategoryID: intPtr(3), SubcategoryID: intPtr(5), BrandID: intPtr(4), Available: true},
			{ID: 5, Name: "Mazda CX-5 Air Filter", VehicleMake: "Mazda", VehicleModel: "CX-5", Price: price("2100.00"), CategoryID: intPtr(2), SubcategoryID: intPtr(4), BrandID: intPtr(2), Available: false},
		},
		[]models.ProductImage{
			{ID: "img-1a", ProductID: 1, ImageURL: "https://cdn.example.com/1a.jpg", DisplayOrder: 2},
			{ID: "img-1b", ProductID: 1, ImageURL: "https://cdn.example.com/1b.jpg", DisplayOrder: 1},
		},
		[]models.Category{
			{ID: 1, Name: "Braking", Slug: "braking"},
			{ID: 2, Name: "Filtration", Slug: "filtration"},
			{ID: 3, Name: "Suspension", Slug: "suspension"},
		},
		[]models.Subcategory{
			{ID: 1, Name: "Brake Pads", Slug: "brake-pads", CategoryID: 1},
			{ID: 3, Name: "Oil Filters", Slug: "oil-filters", CategoryID: 2},
			{ID: 4, Name: "Air Filters", Slug: "air-filters", CategoryID: 2},
			{ID: 5, Name: "Shock Absorbers", Slug: "shock-absorbers", CategoryID: 3},
		},
		[]models.Brand{
			{ID: 1, Name: "Bosch", Slug: "bosch"},
			{ID: 2, Name: "Denso", Slug: "denso"},
			{ID: 4, Name: "KYB", Slug: "kyb"},
		},
	)
	return store
}

func TestListProductsFilters(t *testing.T) {
	store := seedCatalog(t)
	ctx := context.Background()

	ids := func(products []models.Product) []int {
		out := make([]int, 0, len(products))
		for _, p := range products {
			out = append(out, p.ID)
		}
		return out
	}

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		products, total, err := store.ListProducts(ctx, repositories.ProductFilters{Search: "TOYOTA"}, repositories.Pagination{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.ElementsMatch(t, []int{1, 4}, ids(products))

		products, _, err = store.ListProducts(ctx, repositories.ProductFilters{Search: "mr20de"}, repositories.Pagination{})
		require.NoError(t, err)
		assert.Equal(t, []int{2}, ids(products))

		products, _, err = store.ListProducts(ctx, repositories.ProductFilters{Search: "04465"}, repositories.Pagination{})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ids(products))
	})

	t.Run("category and brand filters combine", func(t *testing.T) {
		available := true
		products, total, err := store.ListProducts(ctx, repositories.ProductFilters{CategoryID: 2, BrandID: 2, Available: &available}, repositories.Pagination{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.ElementsMatch(t, []int{2, 3}, ids(products))
	})

	t.Run("price range bounds are inclusive", func(t *testing.T) {
		min, max := price("950.00"), price("2100.00")
		products, total, err := store.ListProducts(ctx, repositories.ProductFilters{MinPrice: &min, MaxPrice: &max}, repositories.Pagination{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.ElementsMatch(t, []int{2, 3, 5}, ids(products))
	})

	t.Run("no match returns empty slice not nil error", func(t *testing.T) {
		products, total, err := store.ListProducts(ctx, repositories.ProductFilters{Search: "flux capacitor"}, repositories.Pagination{})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, products)
	})
}

func TestListProductsOrdering(t *testing.T) {
	store := repositories.NewMemoryStore()
	store.SeedCatalog([]models.Product{
		{ID: 1, Name: "Complete row", Description: "has both", Price: price("100"), Available: true},
		{ID: 2, Name: "Name only", Price: price("100"), Available: true},
		{ID: 3, Description: "description only", Price: price("100"), Available: true},
		{ID: 4, Name: "Another complete row", Description: "also both", Price: price("100"), Available: true},
	}, nil, nil, nil, nil)

	products, total, err := store.ListProducts(context.Background(), repositories.ProductFilters{}, repositories.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	got := make([]int, 0, len(products))
	for _, p := range products {
		got = append(got, p.ID)
	}
	// Complete rows first, then name-only, then the rest; newest id first
	// within each tier.
	assert.Equal(t, []int{4, 1, 2, 3}, got)
}

func TestListProductsPagination(t *testing.T) {
	store := repositories.NewMemoryStore()

	var products []models.Product
	for i := 1; i <= 50; i++ {
		products = append(products, models.Product{
			ID:          i,
			Name:        fmt.Sprintf("Matching part %d", i),
			Description: "in range",
			Price:       price("15000.00"),
			CategoryID:  intPtr(3),
			Available:   true,
		})
	}
	for i := 51; i <= 60; i++ {
		products = append(products, models.Product{
			ID:          i,
			Name:        fmt.Sprintf("Out of range part %d", i),
			Description: "too cheap",
			Price:       price("100.00"),
			CategoryID:  intPtr(3),
			Available:   true,
		})
	}
	store.SeedCatalog(products, nil, nil, nil, nil)

	ctx := context.Background()
	min, max := price("10000"), price("20000")
	filters := repositories.ProductFilters{CategoryID: 3, MinPrice: &min, MaxPrice: &max}

	page1, total, err := store.ListProducts(ctx, filters, repositories.Pagination{Page: 1, Limit: 24})
	require.NoError(t, err)
	assert.EqualValues(t, 50, total)
	require.Len(t, page1, 24)

	page2, total, err := store.ListProducts(ctx, filters, repositories.Pagination{Page: 2, Limit: 24})
	require.NoError(t, err)
	assert.EqualValues(t, 50, total)
	require.Len(t, page2, 24)

	page3, total, err := store.ListProducts(ctx, filters, repositories.Pagination{Page: 3, Limit: 24})
	require.NoError(t, err)
	assert.EqualValues(t, 50, total)
	require.Len(t, page3, 2)

	seen := map[int]bool{}
	for _, p := range append(append(append([]models.Product{}, page1...), page2...), page3...) {
		assert.False(t, seen[p.ID], "product %d appeared on two pages", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 50)

	t.Run("page past the end is empty with intact total", func(t *testing.T) {
		pageFar, total, err := store.ListProducts(ctx, filters, repositories.Pagination{Page: 9, Limit: 24})
		require.NoError(t, err)
		assert.EqualValues(t, 50, total)
		assert.Empty(t, pageFar)
	})

	t.Run("repeat query returns identical pages", func(t *testing.T) {
		again, _, err := store.ListProducts(ctx, filters, repositories.Pagination{Page: 2, Limit: 24})
		require.NoError(t, err)
		assert.Equal(t, page2, again)
	})
}

func TestSearchProducts(t *testing.T) {
	store := seedCatalog(t)
	ctx := context.Background()

	results, err := store.SearchProducts(ctx, "filter", 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = store.SearchProducts(ctx, "filter", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestGetProduct(t *testing.T) {
	store := seedCatalog(t)
	ctx := context.Background()

	product, err := store.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Corolla Brake Pad Set", product.Name)
	assert.True(t, product.Price.Equal(price("4500.00")))

	_, err = store.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetProductImages(t *testing.T) {
	store := seedCatalog(t)

	images, err := store.GetProductImages(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "img-1b", images[0].ID, "images sorted by display order")

	images, err = store.GetProductImages(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestLookups(t *testing.T) {
	store := seedCatalog(t)
	ctx := context.Background()

	t.Run("categories", func(t *testing.T) {
		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 3)

		category, err := store.GetCategory(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Filtration", category.Name)

		bySlug, err := store.GetCategoryBySlug(ctx, "filtration")
		require.NoError(t, err)
		assert.Equal(t, category.ID, bySlug.ID)

		_, err = store.GetCategory(ctx, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		_, err = store.GetCategoryBySlug(ctx, "no-such")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("subcategories scoped by category", func(t *testing.T) {
		subs, err := store.GetSubcategories(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, subs, 2)

		all, err := store.GetSubcategories(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		sub, err := store.GetSubcategory(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Shock Absorbers", sub.Name)
	})

	t.Run("brands", func(t *testing.T) {
		brands, err := store.GetBrands(ctx)
		require.NoError(t, err)
		assert.Len(t, brands, 3)

		brand, err := store.GetBrand(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "KYB", brand.Name)

		_, err = store.GetBrand(ctx, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestLoadCSVDir(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.LoadCSVDir("../db/data"))

	ctx := context.Background()

	_, total, err := store.ListProducts(ctx, repositories.ProductFilters{}, repositories.Pagination{Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)

	brands, err := store.GetBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 5)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	subs, err := store.GetSubcategories(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, subs, 6)

	product, err := store.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(price("4500.00")))
	assert.True(t, product.Available)

	discontinued, err := store.GetProduct(ctx, 11)
	require.NoError(t, err)
	assert.False(t, discontinued.Available)
}
