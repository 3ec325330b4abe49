package service

import (
	"context"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// TradeService handles trade-related operations against the trading backend.
type TradeService struct {
	api *tradeapi.Client
}

// NewTradeService creates a new TradeService
func NewTradeService(api *tradeapi.Client) *TradeService {
	return &TradeService{api: api}
}

// GetTrades returns all trades of an account.
func (s *TradeService) GetTrades(ctx context.Context, accountID string) ([]model.Trade, error) {
	return s.api.Trades(ctx, accountID)
}

// GetTradesBySymbol returns an account's trades for one symbol.
func (s *TradeService) GetTradesBySymbol(ctx context.Context, accountID, symbol string) ([]model.Trade, error) {
	return s.api.TradesBySymbol(ctx, accountID, symbol)
}

// CreateTrade validates the payload and records the trade upstream.
func (s *TradeService) CreateTrade(ctx context.Context, req tradeapi.TradeRequest) (model.Trade, error) {
	if err := validation.ValidateCreateTrade(req); err != nil {
		return model.Trade{}, err
	}
	return s.api.CreateTrade(ctx, req)
}
