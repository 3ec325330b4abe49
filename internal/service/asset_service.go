package service

import (
	"context"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// AssetService handles asset-related operations against the trading backend.
type AssetService struct {
	api *tradeapi.Client
}

// NewAssetService creates a new AssetService
func NewAssetService(api *tradeapi.Client) *AssetService {
	return &AssetService{api: api}
}

// GetAllAssets returns every tradable asset known to the backend.
func (s *AssetService) GetAllAssets(ctx context.Context) ([]model.Asset, error) {
	return s.api.ListAssets(ctx)
}

// CreateAsset validates the payload and creates the asset upstream.
func (s *AssetService) CreateAsset(ctx context.Context, req tradeapi.AssetRequest) (model.Asset, error) {
	if err := validation.ValidateCreateAsset(req); err != nil {
		return model.Asset{}, err
	}
	return s.api.CreateAsset(ctx, req)
}

// UpdateAsset validates the payload and updates the asset upstream.
func (s *AssetService) UpdateAsset(ctx context.Context, symbol string, req tradeapi.AssetUpdateRequest) error {
	if err := validation.ValidateUpdateAsset(req); err != nil {
		return err
	}
	return s.api.UpdateAsset(ctx, symbol, req)
}

// DeleteAsset deletes the asset upstream.
func (s *AssetService) DeleteAsset(ctx context.Context, symbol string) error {
	return s.api.DeleteAsset(ctx, symbol)
}
