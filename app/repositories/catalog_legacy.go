package repositories

import (
	"context"
	"strings"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// legacyCatalog serves the normalized multi-table schema produced by the
// original CSV import (products, brands, categories, subcategories,
// product_images).
type legacyCatalog struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLegacyCatalog(db *gorm.DB, logger *zap.Logger) CatalogStore {
	return &legacyCatalog{db: db, logger: logger}
}

func (c *legacyCatalog) applyFilters(db *gorm.DB, f ProductFilters) *gorm.DB {
	if f.Search != "" {
		kw := "%" + strings.ToLower(f.Search) + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(vehicle_make) LIKE ? OR LOWER(vehicle_model) LIKE ? OR LOWER(oem_part_number) LIKE ?",
			kw, kw, kw, kw, kw,
		)
	}
	if f.CategoryID != 0 {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.SubcategoryID != 0 {
		db = db.Where("subcategory_id = ?", f.SubcategoryID)
	}
	if f.BrandID != 0 {
		db = db.Where("brand_id = ?", f.BrandID)
	}
	if f.VehicleMake != "" {
		db = db.Where("LOWER(vehicle_make) LIKE ?", "%"+strings.ToLower(f.VehicleMake)+"%")
	}
	if f.VehicleModel != "" {
		db = db.Where("LOWER(vehicle_model) LIKE ?", "%"+strings.ToLower(f.VehicleModel)+"%")
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", f.MaxPrice)
	}
	if f.Available != nil {
		db = db.Where("available = ?", *f.Available)
	}
	return db
}

// Completeness rank first, then id descending. Same three tiers as the
// parts and in-memory variants: name and description, name only, rest.
const legacyProductOrder = "CASE WHEN name IS NOT NULL AND name <> '' AND description IS NOT NULL AND description <> '' THEN 1 WHEN name IS NOT NULL AND name <> '' THEN 2 ELSE 3 END, id DESC"

// ListProducts degrades to an empty result set on store failure so the
// storefront stays browsable through backing-store hiccups. The failure
// is logged here; callers must not treat the empty page as an error.
func (c *legacyCatalog) ListProducts(ctx context.Context, filters ProductFilters, page Pagination) ([]models.Product, int64, error) {
	_, limit, offset := page.Normalize()

	var total int64
	if err := c.applyFilters(c.db.WithContext(ctx).Model(&models.Product{}), filters).Count(&total).Error; err != nil {
		c.logger.Error("catalog: count products failed", zap.Error(err))
		return []models.Product{}, 0, nil
	}

	var products []models.Product
	err := c.applyFilters(c.db.WithContext(ctx).Model(&models.Product{}), filters).
		Order(legacyProductOrder).
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		c.logger.Error("catalog: list products failed", zap.Error(err))
		return []models.Product{}, 0, nil
	}

	return products, total, nil
}

func (c *legacyCatalog) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *legacyCatalog) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	var products []models.Product
	err := c.applyFilters(c.db.WithContext(ctx).Model(&models.Product{}), ProductFilters{Search: query}).
		Order(legacyProductOrder).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *legacyCatalog) GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := c.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (c *legacyCatalog) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *legacyCatalog) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *legacyCatalog) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := c.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *legacyCatalog) GetSubcategories(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	db := c.db.WithContext(ctx).Order("name ASC")
	if categoryID != 0 {
		db = db.Where("category_id = ?", categoryID)
	}
	var subcategories []models.Subcategory
	if err := db.Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (c *legacyCatalog) GetSubcategory(ctx context.Context, id int) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := c.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (c *legacyCatalog) GetBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *legacyCatalog) GetBrand(ctx context.Context, id int) (*models.Brand, error) {
	var brand models.Brand
	if err := c.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}
