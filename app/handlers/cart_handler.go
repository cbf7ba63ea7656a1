package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/services"
	"github.com/JBlizzard-sketch/Autoscraper/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type CartHandler struct {
	carts    *services.CartService
	sessions *sessions.Store
	render   *render.Render
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCartHandler(carts *services.CartService, sessionStore *sessions.Store, rnd *render.Render, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		sessions: sessionStore,
		render:   rnd,
		validate: validator.New(),
		logger:   logger,
	}
}

type cartResponse struct {
	Cart  *models.Cart      `json:"cart"`
	Items []models.CartItem `json:"items"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.sessions.ShopperToken(w, r)
	if err != nil {
		h.logger.Error("shopper token failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart, items, err := h.carts.GetCart(r.Context(), sessionID)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Cart not found", "Failed to fetch cart")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cartResponse{Cart: cart, Items: items})
}

type addCartItemRequest struct {
	ProductID int             `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(h.render, w, http.StatusBadRequest, validationMessage(err))
		return
	}

	sessionID, err := h.sessions.ShopperToken(w, r)
	if err != nil {
		h.logger.Error("shopper token failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	item, err := h.carts.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Cart not found", "Failed to add item to cart")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, item)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(h.render, w, http.StatusBadRequest, validationMessage(err))
		return
	}

	item, err := h.carts.UpdateItemQuantity(r.Context(), mux.Vars(r)["id"], req.Quantity)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Cart item not found", "Failed to update cart item")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, item)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.RemoveItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondEngineError(h.render, h.logger, w, err, "Cart item not found", "Failed to remove cart item")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.sessions.ShopperToken(w, r)
	if err != nil {
		h.logger.Error("shopper token failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	if err := h.carts.ClearCart(r.Context(), sessionID); err != nil {
		respondEngineError(h.render, h.logger, w, err, "Cart not found", "Failed to clear cart")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
