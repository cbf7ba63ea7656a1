package handlers

import (
	"net/http"
	"strconv"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog repositories.CatalogStore
	render  *render.Render
	logger  *zap.Logger
}

func NewProductHandler(catalog repositories.CatalogStore, rnd *render.Render, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, render: rnd, logger: logger}
}

type productListResponse struct {
	Data  []models.Product `json:"data"`
	Total int64            `json:"total"`
}

func parseFilters(r *http.Request) (repositories.ProductFilters, string) {
	q := r.URL.Query()
	filters := repositories.ProductFilters{
		Search:       q.Get("search"),
		VehicleMake:  q.Get("vehicle_make"),
		VehicleModel: q.Get("vehicle_model"),
	}

	for param, target := range map[string]*int{
		"category_id":    &filters.CategoryID,
		"subcategory_id": &filters.SubcategoryID,
		"brand_id":       &filters.BrandID,
	} {
		if raw := q.Get(param); raw != "" {
			val, err := strconv.Atoi(raw)
			if err != nil {
				return filters, "Invalid " + param
			}
			*target = val
		}
	}

	if raw := q.Get("min_price"); raw != "" {
		val, err := decimal.NewFromString(raw)
		if err != nil || val.IsNegative() {
			return filters, "Invalid min_price"
		}
		filters.MinPrice = &val
	}
	if raw := q.Get("max_price"); raw != "" {
		val, err := decimal.NewFromString(raw)
		if err != nil || val.IsNegative() {
			return filters, "Invalid max_price"
		}
		filters.MaxPrice = &val
	}
	if raw := q.Get("available"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, "Invalid available"
		}
		filters.Available = &val
	}

	return filters, ""
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, badParam := parseFilters(r)
	if badParam != "" {
		respondError(h.render, w, http.StatusBadRequest, badParam)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, total, err := h.catalog.ListProducts(r.Context(), filters, repositories.Pagination{Page: page, Limit: limit})
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, productListResponse{Data: products, Total: total})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Product not found", "Failed to fetch product")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Images(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.catalog.GetProduct(r.Context(), id); err != nil {
		respondEngineError(h.render, h.logger, w, err, "Product not found", "Failed to fetch product images")
		return
	}

	images, err := h.catalog.GetProductImages(r.Context(), id)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Product not found", "Failed to fetch product images")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, images)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(h.render, w, http.StatusBadRequest, "Search query is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.catalog.SearchProducts(r.Context(), query, limit)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Search failed")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, results)
}
