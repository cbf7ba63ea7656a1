package repositories

import (
	"context"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/shopspring/decimal"
)

// ProductFilters are AND-combined. Zero values mean "not filtered".
type ProductFilters struct {
	Search        string
	CategoryID    int
	SubcategoryID int
	BrandID       int
	VehicleMake   string
	VehicleModel  string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Available     *bool
}

type Pagination struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit   = 24
	DefaultSearchLimit = 10
)

func (p Pagination) Normalize() (page, limit, offset int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	return page, limit, (page - 1) * limit
}

// CatalogStore is the schema-agnostic catalog contract. Three
// implementations exist: the normalized legacy tables, the denormalized
// parts_final table, and the CSV-backed in-memory store. All must
// return identical result shapes for identical filters, and all must
// page with a deterministic order so repeated queries against an
// unchanged dataset never drop or duplicate rows across pages.
type CatalogStore interface {
	ListProducts(ctx context.Context, filters ProductFilters, page Pagination) ([]models.Product, int64, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)
	GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)

	GetSubcategories(ctx context.Context, categoryID int) ([]models.Subcategory, error)
	GetSubcategory(ctx context.Context, id int) (*models.Subcategory, error)

	GetBrands(ctx context.Context) ([]models.Brand, error)
	GetBrand(ctx context.Context, id int) (*models.Brand, error)
}
