package handlers

import (
	"net/http"
	"strconv"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// LookupHandler serves the reference entities: categories,
// subcategories and brands.
type LookupHandler struct {
	catalog repositories.CatalogStore
	render  *render.Render
	logger  *zap.Logger
}

func NewLookupHandler(catalog repositories.CatalogStore, rnd *render.Render, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{catalog: catalog, render: rnd, logger: logger}
}

func (h *LookupHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("get categories failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *LookupHandler) Category(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	category, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Category not found", "Failed to fetch category")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *LookupHandler) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.GetCategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Category not found", "Failed to fetch category")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

type categoryWithCount struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// CategoriesWithCounts aggregates per-category product totals using the
// same predicate as the listing endpoint.
func (h *LookupHandler) CategoriesWithCounts(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("get categories failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	result := make([]categoryWithCount, 0, len(categories))
	for _, category := range categories {
		_, total, err := h.catalog.ListProducts(r.Context(),
			repositories.ProductFilters{CategoryID: category.ID},
			repositories.Pagination{Page: 1, Limit: 1},
		)
		if err != nil {
			h.logger.Error("count products for category failed", zap.Int("category_id", category.ID), zap.Error(err))
			respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		result = append(result, categoryWithCount{Category: category, ProductCount: total})
	}

	_ = h.render.JSON(w, http.StatusOK, result)
}

func (h *LookupHandler) Subcategories(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			respondError(h.render, w, http.StatusBadRequest, "Invalid category_id")
			return
		}
		categoryID = val
	}

	subcategories, err := h.catalog.GetSubcategories(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("get subcategories failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch subcategories")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, subcategories)
}

func (h *LookupHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.GetBrands(r.Context())
	if err != nil {
		h.logger.Error("get brands failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, brands)
}

func (h *LookupHandler) Brand(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	brand, err := h.catalog.GetBrand(r.Context(), id)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Brand not found", "Failed to fetch brand")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, brand)
}
