package service

import (
	"context"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// OrderService handles order-related operations against the trading backend.
type OrderService struct {
	api *tradeapi.Client
}

// NewOrderService creates a new OrderService
func NewOrderService(api *tradeapi.Client) *OrderService {
	return &OrderService{api: api}
}

// GetOrders returns all orders of an account.
func (s *OrderService) GetOrders(ctx context.Context, accountID string) ([]model.Order, error) {
	return s.api.Orders(ctx, accountID)
}

// CreateOrder validates the payload and places the order upstream. Orders
// share the trade payload shape and validation rules.
func (s *OrderService) CreateOrder(ctx context.Context, req tradeapi.TradeRequest) (model.Order, error) {
	if err := validation.ValidateCreateTrade(req); err != nil {
		return model.Order{}, err
	}
	return s.api.CreateOrder(ctx, req)
}
