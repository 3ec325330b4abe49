package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// GetAssets lists all tradable assets.
//
// Endpoint: GET /api/assets
func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.GetAllAssets(r.Context())
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve assets", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, assets)
}

// CreateAsset creates an asset from the add-asset dialog payload.
//
// Endpoint: POST /api/assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req tradeapi.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, "failed to add asset", err)
		return
	}
	response.RespondJSON(w, http.StatusCreated, asset)
}

// UpdateAsset updates the asset named in the URL.
//
// Endpoint: PUT /api/assets/{symbol}
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "asset symbol is required", "")
		return
	}

	var req tradeapi.AssetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.assetService.UpdateAsset(r.Context(), symbol, req); err != nil {
		response.RespondServiceError(w, "failed to update asset", err)
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteAsset deletes the asset named in the URL.
//
// Endpoint: DELETE /api/assets/{symbol}
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "asset symbol is required", "")
		return
	}

	if err := h.assetService.DeleteAsset(r.Context(), symbol); err != nil {
		response.RespondServiceError(w, "failed to delete asset", err)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}
