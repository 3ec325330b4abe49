package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/refresh"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// PositionHandler handles position-related HTTP requests. Reads go through
// the refresh poller so an active positions tab is served from the
// auto-refreshed snapshot instead of hitting the backend on every poll.
type PositionHandler struct {
	positionService *service.PositionService
	poller          *refresh.Poller
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(positionService *service.PositionService, poller *refresh.Poller) *PositionHandler {
	return &PositionHandler{positionService: positionService, poller: poller}
}

// GetPositions returns an account's positions grouped by date with
// per-group totals.
//
// Endpoint: GET /api/positions/{accountId}
func (h *PositionHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}

	snap := h.poller.Get(r.Context(), refresh.KindPositions, accountID)
	if snap.Error != "" {
		response.RespondError(w, http.StatusBadGateway, "failed to retrieve positions", snap.Error)
		return
	}
	groups, ok := snap.Data.([]model.PositionGroup)
	if !ok {
		groups = []model.PositionGroup{}
	}
	response.RespondJSON(w, http.StatusOK, groups)
}

// CreatePosition creates a position from the add-position dialog payload
// and invalidates the account's positions snapshot.
//
// Endpoint: POST /api/positions
func (h *PositionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req tradeapi.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	position, err := h.positionService.CreatePosition(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, "failed to add position", err)
		return
	}

	h.poller.Refresh(r.Context(), refresh.KindPositions, req.AccountID)
	response.RespondJSON(w, http.StatusCreated, position)
}

// DeletePosition deletes the position named in the URL. The accounts whose
// snapshots include it will pick the change up on their next refresh; the
// optional account query parameter forces it immediately.
//
// Endpoint: DELETE /api/positions/{id}[?account=]
func (h *PositionHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.RespondError(w, http.StatusBadRequest, "position ID is required", "")
		return
	}

	if err := h.positionService.DeletePosition(r.Context(), id); err != nil {
		response.RespondServiceError(w, "failed to delete position", err)
		return
	}

	if account := r.URL.Query().Get("account"); account != "" {
		h.poller.Refresh(r.Context(), refresh.KindPositions, account)
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}
