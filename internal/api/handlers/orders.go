package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrders lists all orders of an account.
//
// Endpoint: GET /api/orders/{accountId}
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), accountID)
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve orders", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, orders)
}

// CreateOrder places an order from the add-order dialog payload.
//
// Endpoint: POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req tradeapi.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, "failed to add order", err)
		return
	}
	response.RespondJSON(w, http.StatusCreated, order)
}
