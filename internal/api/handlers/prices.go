package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// PriceHandler handles symbol price requests
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// GetPrices returns a symbol's price history (raw map plus a date-sorted
// series) and its latest price.
//
// Endpoint: GET /api/prices/{symbol}[?account=&start=&end=]
func (h *PriceHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "symbol is required", "")
		return
	}

	query := tradeapi.PriceQuery{
		Account: r.URL.Query().Get("account"),
		Start:   r.URL.Query().Get("start"),
		End:     r.URL.Query().Get("end"),
	}

	prices, err := h.priceService.GetPrices(r.Context(), symbol, query)
	if err != nil {
		response.RespondServiceError(w, "failed to get prices", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, prices)
}
