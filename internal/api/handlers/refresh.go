package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/refresh"
)

// RefreshHandler exposes the manual refresh action of the snapshot poller.
type RefreshHandler struct {
	poller *refresh.Poller
}

// NewRefreshHandler creates a new RefreshHandler
func NewRefreshHandler(poller *refresh.Poller) *RefreshHandler {
	return &RefreshHandler{poller: poller}
}

// Refresh forces an immediate re-fetch of one snapshot and returns it,
// including its loading/error state and last update time.
//
// Endpoint: POST /api/refresh/{kind}/{accountId}
func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	kind := refresh.Kind(chi.URLParam(r, "kind"))
	accountID := chi.URLParam(r, "accountId")
	if accountID == "" {
		response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
		return
	}
	if !h.poller.Known(kind) {
		response.RespondError(w, http.StatusNotFound, "unknown refresh kind", string(kind))
		return
	}

	snap := h.poller.Refresh(r.Context(), kind, accountID)
	response.RespondJSON(w, http.StatusOK, snap)
}
