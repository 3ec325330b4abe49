package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
)

// SettingsHandler handles persisted dashboard preferences.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// ThemeResponse carries the persisted theme flag.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// GetTheme returns the persisted theme preference.
//
// Endpoint: GET /api/settings/theme
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.settingsService.GetTheme(r.Context())
	if err != nil {
		response.RespondServiceError(w, "failed to load theme", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme persists the theme preference.
//
// Endpoint: PUT /api/settings/theme
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingsService.SetTheme(r.Context(), req.Theme); err != nil {
		response.RespondServiceError(w, "failed to save theme", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}
