package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// TradeHandler handles trade-related HTTP requests
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// GetTrades lists all trades of an account.
//
// Endpoint: GET /api/trades/{accountId}
func (h *TradeHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	trades, err := h.tradeService.GetTrades(r.Context(), accountID)
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve trades", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTradesBySymbol lists an account's trades for one symbol.
//
// Endpoint: GET /api/trades/{accountId}/{symbol}
func (h *TradeHandler) GetTradesBySymbol(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	symbol := chi.URLParam(r, "symbol")
	if accountID == "" || symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID and symbol are required", "")
		return
	}

	trades, err := h.tradeService.GetTradesBySymbol(r.Context(), accountID, symbol)
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve trades", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, trades)
}

// CreateTrade records a trade from the add-trade dialog payload.
//
// Endpoint: POST /api/trades
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	var req tradeapi.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, "failed to add trade", err)
		return
	}
	response.RespondJSON(w, http.StatusCreated, trade)
}
