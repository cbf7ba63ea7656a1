package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JBlizzard-sketch/Autoscraper/app/models"
	"github.com/JBlizzard-sketch/Autoscraper/app/services"
	"github.com/JBlizzard-sketch/Autoscraper/app/utils/format"
	"github.com/JBlizzard-sketch/Autoscraper/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type OrderHandler struct {
	checkout *services.CheckoutService
	sessions *sessions.Store
	render   *render.Render
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderHandler(checkout *services.CheckoutService, sessionStore *sessions.Store, rnd *render.Render, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		sessions: sessionStore,
		render:   rnd,
		validate: validator.New(),
		logger:   logger,
	}
}

type createOrderRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required,min=10"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryCounty  string `json:"delivery_county"`
	DeliveryTown    string `json:"delivery_town"`
	Notes           string `json:"notes"`
}

type orderResponse struct {
	Order *models.Order      `json:"order"`
	Items []models.OrderItem `json:"items"`
}

type orderDetailResponse struct {
	Order        *models.Order      `json:"order"`
	Items        []models.OrderItem `json:"items"`
	TotalDisplay string             `json:"total_display"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
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
		respondError(h.render, w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	order, items, err := h.checkout.PlaceOrder(r.Context(), sessionID, services.CustomerInfo{
		Name:            req.CustomerName,
		Phone:           req.CustomerPhone,
		Email:           req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCounty:  req.DeliveryCounty,
		DeliveryTown:    req.DeliveryTown,
		Notes:           req.Notes,
	})
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Order not found", "Failed to create order")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orderResponse{Order: order, Items: items})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.sessions.ShopperToken(w, r)
	if err != nil {
		h.logger.Error("shopper token failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	orders, err := h.checkout.GetOrders(r.Context(), sessionID)
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Order not found", "Failed to fetch orders")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	order, items, err := h.checkout.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Order not found", "Failed to fetch order")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orderDetailResponse{
		Order:        order,
		Items:        items,
		TotalDisplay: format.KES(order.TotalAmount),
	})
}
