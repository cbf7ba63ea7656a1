package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MemoryStore is the third catalog variant, loaded from the flat CSV
// export of the scrape. It also backs carts and orders so the whole
// storefront can run without a database (dev, demo, tests). It
// satisfies CatalogStore, CartStore and OrderStore.
type MemoryStore struct {
	mu            sync.RWMutex
	products      []models.Product
	images        []models.ProductImage
	categories    []models.Category
	subcategories []models.Subcategory
	brands        []models.Brand
	blogPosts     []models.BlogPost
	blogCats      []models.BlogCategory
	carts         map[string]*models.Cart
	cartItems     map[string][]models.CartItem
	orders        map[string]*models.Order
	orderItems    map[string][]models.OrderItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:      make(map[string]*models.Cart),
		cartItems:  make(map[string][]models.CartItem),
		orders:     make(map[string]*models.Order),
		orderItems: make(map[string][]models.OrderItem),
	}
}

type brandCSV struct {
	ID   int    `csv:"id"`
	Name string `csv:"name"`
	Slug string `csv:"slug"`
}

type categoryCSV struct {
	ID   int    `csv:"id"`
	Name string `csv:"name"`
	Slug string `csv:"slug"`
}

type subcategoryCSV struct {
	ID         int    `csv:"id"`
	Name       string `csv:"name"`
	Slug       string `csv:"slug"`
	CategoryID int    `csv:"category_id"`
}

type productCSV struct {
	ID            int    `csv:"id"`
	Name          string `csv:"name"`
	Slug          string `csv:"slug"`
	Sku           string `csv:"sku"`
	Price         string `csv:"price"`
	VehicleMake   string `csv:"vehicle_make"`
	VehicleModel  string `csv:"vehicle_model"`
	YearRange     string `csv:"year_range"`
	EngineSize    string `csv:"engine_size"`
	BrandID       int    `csv:"brand_id"`
	CategoryID    int    `csv:"category_id"`
	SubcategoryID int    `csv:"subcategory_id"`
	OEMPartNumber string `csv:"oem_part_number"`
	Description   string `csv:"description"`
	ImageURL      string `csv:"image_url"`
	StockQuantity int    `csv:"stock_quantity"`
	Available     string `csv:"available"`
}

func loadCSV[T any](dir, name string) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return rows, nil
}

func optionalID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}

// LoadCSVDir fills the catalog from the flat export files
// (brands.csv, categories.csv, subcategories.csv, products.csv).
func (s *MemoryStore) LoadCSVDir(dir string) error {
	brands, err := loadCSV[brandCSV](dir, "brands.csv")
	if err != nil {
		return err
	}
	categories, err := loadCSV[categoryCSV](dir, "categories.csv")
	if err != nil {
		return err
	}
	subcategories, err := loadCSV[subcategoryCSV](dir, "subcategories.csv")
	if err != nil {
		return err
	}
	products, err := loadCSV[productCSV](dir, "products.csv")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands = s.brands[:0]
	for _, row := range brands {
		s.brands = append(s.brands, models.Brand{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	s.categories = s.categories[:0]
	for _, row := range categories {
		s.categories = append(s.categories, models.Category{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	s.subcategories = s.subcategories[:0]
	for _, row := range subcategories {
		s.subcategories = append(s.subcategories, models.Subcategory{ID: row.ID, Name: row.Name, Slug: row.Slug, CategoryID: row.CategoryID})
	}

	s.products = s.products[:0]
	s.images = s.images[:0]
	for _, row := range products {
		price, err := decimal.NewFromString(row.Price)
		if err != nil {
			return fmt.Errorf("product %d: bad price %q: %w", row.ID, row.Price, err)
		}
		product := models.Product{
			ID:            row.ID,
			Name:          row.Name,
			Slug:          row.Slug,
			Sku:           row.Sku,
			Price:         price,
			VehicleMake:   row.VehicleMake,
			VehicleModel:  row.VehicleModel,
			YearRange:     row.YearRange,
			EngineSize:    row.EngineSize,
			BrandID:       optionalID(row.BrandID),
			CategoryID:    optionalID(row.CategoryID),
			SubcategoryID: optionalID(row.SubcategoryID),
			OEMPartNumber: row.OEMPartNumber,
			Description:   row.Description,
			ImageURL:      row.ImageURL,
			StockQuantity: row.StockQuantity,
			Available:     row.Available != "false",
		}
		s.products = append(s.products, product)
		if row.ImageURL != "" {
			s.images = append(s.images, models.ProductImage{
				ID:        fmt.Sprintf("img-%d", row.ID),
				ProductID: row.ID,
				ImageURL:  row.ImageURL,
			})
		}
	}

	return nil
}

// SeedCatalog replaces the catalog contents directly; used by tests and
// the dev seeder.
func (s *MemoryStore) SeedCatalog(products []models.Product, images []models.ProductImage, categories []models.Category, subcategories []models.Subcategory, brands []models.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.images = images
	s.categories = categories
	s.subcategories = subcategories
	s.brands = brands
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesFilters(p models.Product, f ProductFilters) bool {
	if f.Search != "" {
		if !containsFold(p.Name, f.Search) &&
			!containsFold(p.Description, f.Search) &&
			!containsFold(p.VehicleMake, f.Search) &&
			!containsFold(p.VehicleModel, f.Search) &&
			!containsFold(p.OEMPartNumber, f.Search) {
			return false
		}
	}
	if f.CategoryID != 0 && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
		return false
	}
	if f.SubcategoryID != 0 && (p.SubcategoryID == nil || *p.SubcategoryID != f.SubcategoryID) {
		return false
	}
	if f.BrandID != 0 && (p.BrandID == nil || *p.BrandID != f.BrandID) {
		return false
	}
	if f.VehicleMake != "" && !containsFold(p.VehicleMake, f.VehicleMake) {
		return false
	}
	if f.VehicleModel != "" && !containsFold(p.VehicleModel, f.VehicleModel) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Available != nil && p.Available != *f.Available {
		return false
	}
	return true
}

func productRank(p models.Product) int {
	switch {
	case p.Name != "" && p.Description != "":
		return 1
	case p.Name != "":
		return 2
	default:
		return 3
	}
}

func sortProducts(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		ri, rj := productRank(products[i]), productRank(products[j])
		if ri != rj {
			return ri < rj
		}
		return products[i].ID > products[j].ID
	})
}

func (s *MemoryStore) filterProducts(f ProductFilters) []models.Product {
	var filtered []models.Product
	for _, p := range s.products {
		if matchesFilters(p, f) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered)
	return filtered
}

func (s *MemoryStore) ListProducts(ctx context.Context, filters ProductFilters, page Pagination) ([]models.Product, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filterProducts(filters)
	total := int64(len(filtered))

	_, limit, offset := page.Normalize()
	if offset >= len(filtered) {
		return []models.Product{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return append([]models.Product{}, filtered[offset:end]...), total, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filterProducts(ProductFilters{Search: query})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (s *MemoryStore) GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := []models.ProductImage{}
	for _, img := range s.images {
		if img.ProductID == productID {
			images = append(images, img)
		}
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].DisplayOrder < images[j].DisplayOrder })
	return images, nil
}

func (s *MemoryStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category{}, s.categories...), nil
}

func (s *MemoryStore) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) GetSubcategories(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subcategories := []models.Subcategory{}
	for _, sc := range s.subcategories {
		if categoryID == 0 || sc.CategoryID == categoryID {
			subcategories = append(subcategories, sc)
		}
	}
	return subcategories, nil
}

func (s *MemoryStore) GetSubcategory(ctx context.Context, id int) (*models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sc := range s.subcategories {
		if sc.ID == id {
			subcategory := sc
			return &subcategory, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) GetBrands(ctx context.Context) ([]models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Brand{}, s.brands...), nil
}

func (s *MemoryStore) GetBrand(ctx context.Context, id int) (*models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.brands {
		if b.ID == id {
			brand := b
			return &brand, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
