package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/refresh"
	"github.com/andrealuzzi/tradingweb/internal/service"
)

// HistoryHandler handles account history and performance statistics
// requests. History reads go through the refresh poller; statistics are
// recomputed from the current series on every request.
type HistoryHandler struct {
	historyService *service.HistoryService
	poller         *refresh.Poller
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyService *service.HistoryService, poller *refresh.Poller) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, poller: poller}
}

// GetHistory returns the value/performance series for an account.
//
// Endpoint: GET /api/accounthist/{accountId}
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	snap := h.poller.Get(r.Context(), refresh.KindHistory, accountID)
	if snap.Error != "" {
		response.RespondError(w, http.StatusBadGateway, "failed to retrieve account history", snap.Error)
		return
	}
	rows, ok := snap.Data.([]model.HistoryRow)
	if !ok {
		rows = []model.HistoryRow{}
	}
	response.RespondJSON(w, http.StatusOK, rows)
}

// GetStatistics computes the performance statistics for an account's
// current history series.
//
// Endpoint: GET /api/accounthist/{accountId}/statistics
func (h *HistoryHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	result, err := h.historyService.GetStatistics(r.Context(), accountID)
	if err != nil {
		response.RespondServiceError(w, "failed to compute statistics", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// GetOverview returns the aggregated dashboard view of one account:
// history with statistics, grouped positions, trades, and orders, fetched
// concurrently. Sections that failed to load come back empty with the
// failure listed in the errors map.
//
// Endpoint: GET /api/accounts/{id}/overview
func (h *HistoryHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	overview, err := h.historyService.GetOverview(r.Context(), accountID)
	if err != nil {
		response.RespondServiceError(w, "failed to build account overview", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, overview)
}
