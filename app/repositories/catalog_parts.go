package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// partRow is one row of the denormalized parts_final table: a single
// wide table carrying what the legacy schema spreads across joins.
// Brand and vehicle-model names live directly on the product row, and
// most columns are nullable because the scrape is incomplete.
type partRow struct {
	ProductID     int     `gorm:"column:product_id;primaryKey"`
	PartName      *string `gorm:"column:part_name"`
	PartNumber    *string `gorm:"column:part_number"`
	PriceValue    *string `gorm:"column:price_value"`
	ImageURL      *string `gorm:"column:image_url"`
	ProductURL    *string `gorm:"column:product_url"`
	Description   *string `gorm:"column:description"`
	BrandID       *int    `gorm:"column:brand_id"`
	BrandName     *string `gorm:"column:brand_name"`
	ModelID       *int    `gorm:"column:model_id"`
	ModelName     *string `gorm:"column:model_name"`
	CategoryID    *int    `gorm:"column:category_id"`
	SubcategoryID *int    `gorm:"column:subcategory_id"`
}

func (partRow) TableName() string { return "parts_final" }

type brandRow struct {
	BrandID   int    `gorm:"column:brand_id;primaryKey"`
	BrandName string `gorm:"column:brand_name"`
}

func (brandRow) TableName() string { return "brands_final" }

type categoryRow struct {
	CategoryID   int    `gorm:"column:category_id;primaryKey"`
	CategoryName string `gorm:"column:category_name"`
}

func (categoryRow) TableName() string { return "categories_final" }

type subcategoryRow struct {
	SubcategoryID   int    `gorm:"column:subcategory_id;primaryKey"`
	SubcategoryName string `gorm:"column:subcategory_name"`
	CategoryID      int    `gorm:"column:category_id"`
}

func (subcategoryRow) TableName() string { return "subcategories_final" }

// partsCatalog serves the denormalized schema behind the same contract
// as the legacy store. Reference entities are projected from the final
// tables; slugs are synthesized because the physical schema has none.
type partsCatalog struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPartsCatalog(db *gorm.DB, logger *zap.Logger) CatalogStore {
	return &partsCatalog{db: db, logger: logger}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r partRow) toProduct() models.Product {
	name := deref(r.PartName)
	if name == "" {
		name = deref(r.Description)
	}
	description := deref(r.Description)
	if description == "" {
		description = deref(r.PartName)
	}

	price := decimal.Zero
	if r.PriceValue != nil {
		if parsed, err := decimal.NewFromString(*r.PriceValue); err == nil {
			price = parsed
		}
	}

	return models.Product{
		ID:            r.ProductID,
		Name:          name,
		Slug:          fmt.Sprintf("product-%d", r.ProductID),
		Sku:           deref(r.PartNumber),
		OEMPartNumber: deref(r.PartNumber),
		Price:         price,
		VehicleMake:   deref(r.BrandName),
		VehicleModel:  deref(r.ModelName),
		BrandID:       r.BrandID,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Description:   description,
		ProductURL:    deref(r.ProductURL),
		ImageURL:      deref(r.ImageURL),
		Available:     true,
	}
}

func (c *partsCatalog) applyFilters(db *gorm.DB, f ProductFilters) *gorm.DB {
	if f.Search != "" {
		kw := "%" + strings.ToLower(f.Search) + "%"
		db = db.Where(
			"LOWER(part_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand_name) LIKE ? OR LOWER(model_name) LIKE ? OR LOWER(part_number) LIKE ?",
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
		db = db.Where("LOWER(brand_name) LIKE ?", "%"+strings.ToLower(f.VehicleMake)+"%")
	}
	if f.VehicleModel != "" {
		db = db.Where("LOWER(model_name) LIKE ?", "%"+strings.ToLower(f.VehicleModel)+"%")
	}
	if f.MinPrice != nil {
		db = db.Where("price_value >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price_value <= ?", f.MaxPrice)
	}
	// Rows without a name or description are scrape debris and never
	// surface through the listing contract.
	db = db.Where("part_name IS NOT NULL OR description IS NOT NULL")
	return db
}

const partsProductOrder = "CASE WHEN part_name IS NOT NULL AND description IS NOT NULL THEN 1 WHEN part_name IS NOT NULL THEN 2 ELSE 3 END, product_id DESC"

func (c *partsCatalog) ListProducts(ctx context.Context, filters ProductFilters, page Pagination) ([]models.Product, int64, error) {
	// The denormalized schema has no availability column: every row is
	// on offer, so filtering for unavailable stock matches nothing.
	if filters.Available != nil && !*filters.Available {
		return []models.Product{}, 0, nil
	}

	_, limit, offset := page.Normalize()

	var total int64
	if err := c.applyFilters(c.db.WithContext(ctx).Model(&partRow{}), filters).Count(&total).Error; err != nil {
		c.logger.Error("catalog: count parts failed", zap.Error(err))
		return []models.Product{}, 0, nil
	}

	var rows []partRow
	err := c.applyFilters(c.db.WithContext(ctx).Model(&partRow{}), filters).
		Order(partsProductOrder).
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		c.logger.Error("catalog: list parts failed", zap.Error(err))
		return []models.Product{}, 0, nil
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, total, nil
}

func (c *partsCatalog) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var row partRow
	if err := c.db.WithContext(ctx).First(&row, "product_id = ?", id).Error; err != nil {
		return nil, err
	}
	product := row.toProduct()
	return &product, nil
}

func (c *partsCatalog) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	var rows []partRow
	err := c.applyFilters(c.db.WithContext(ctx).Model(&partRow{}), ProductFilters{Search: query}).
		Order(partsProductOrder).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toProduct())
	}
	return products, nil
}

// GetProductImages synthesizes a one-image gallery from the row's
// image_url; the denormalized schema has no gallery table.
func (c *partsCatalog) GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error) {
	var row partRow
	if err := c.db.WithContext(ctx).First(&row, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	if row.ImageURL == nil || *row.ImageURL == "" {
		return []models.ProductImage{}, nil
	}
	return []models.ProductImage{
		{
			ID:           fmt.Sprintf("img-%d", productID),
			ProductID:    productID,
			ImageURL:     *row.ImageURL,
			DisplayOrder: 0,
		},
	}, nil
}

func (c *partsCatalog) GetCategories(ctx context.Context) ([]models.Category, error) {
	var rows []categoryRow
	if err := c.db.WithContext(ctx).Order("category_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, models.Category{
			ID:   row.CategoryID,
			Name: row.CategoryName,
			Slug: slug.Make(row.CategoryName),
		})
	}
	return categories, nil
}

func (c *partsCatalog) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var row categoryRow
	if err := c.db.WithContext(ctx).First(&row, "category_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &models.Category{ID: row.CategoryID, Name: row.CategoryName, Slug: slug.Make(row.CategoryName)}, nil
}

// Category names are unique in the final tables, so the slug can be
// matched by regenerating it per row.
func (c *partsCatalog) GetCategoryBySlug(ctx context.Context, wanted string) (*models.Category, error) {
	categories, err := c.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug == wanted {
			return &categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *partsCatalog) GetSubcategories(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	db := c.db.WithContext(ctx).Order("subcategory_name ASC")
	if categoryID != 0 {
		db = db.Where("category_id = ?", categoryID)
	}
	var rows []subcategoryRow
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	subcategories := make([]models.Subcategory, 0, len(rows))
	for _, row := range rows {
		subcategories = append(subcategories, models.Subcategory{
			ID:         row.SubcategoryID,
			Name:       row.SubcategoryName,
			Slug:       slug.Make(fmt.Sprintf("%s-%d", row.SubcategoryName, row.SubcategoryID)),
			CategoryID: row.CategoryID,
		})
	}
	return subcategories, nil
}

func (c *partsCatalog) GetSubcategory(ctx context.Context, id int) (*models.Subcategory, error) {
	var row subcategoryRow
	if err := c.db.WithContext(ctx).First(&row, "subcategory_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &models.Subcategory{
		ID:         row.SubcategoryID,
		Name:       row.SubcategoryName,
		Slug:       slug.Make(fmt.Sprintf("%s-%d", row.SubcategoryName, row.SubcategoryID)),
		CategoryID: row.CategoryID,
	}, nil
}

func (c *partsCatalog) GetBrands(ctx context.Context) ([]models.Brand, error) {
	var rows []brandRow
	if err := c.db.WithContext(ctx).Order("brand_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	brands := make([]models.Brand, 0, len(rows))
	for _, row := range rows {
		brands = append(brands, models.Brand{
			ID:   row.BrandID,
			Name: row.BrandName,
			Slug: slug.Make(fmt.Sprintf("%s-%d", row.BrandName, row.BrandID)),
		})
	}
	return brands, nil
}

func (c *partsCatalog) GetBrand(ctx context.Context, id int) (*models.Brand, error) {
	var row brandRow
	if err := c.db.WithContext(ctx).First(&row, "brand_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &models.Brand{
		ID:   row.BrandID,
		Name: row.BrandName,
		Slug: slug.Make(fmt.Sprintf("%s-%d", row.BrandName, row.BrandID)),
	}, nil
}
