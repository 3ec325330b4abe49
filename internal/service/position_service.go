package service

import (
	"context"
	"sort"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// PositionService handles position-related operations against the trading
// backend, including the per-date grouping the dashboard renders.
type PositionService struct {
	api *tradeapi.Client
}

// NewPositionService creates a new PositionService
func NewPositionService(api *tradeapi.Client) *PositionService {
	return &PositionService{api: api}
}

// GetPositions returns the raw position rows for an account.
func (s *PositionService) GetPositions(ctx context.Context, accountID string) ([]model.Position, error) {
	return s.api.Positions(ctx, accountID)
}

// GetPositionsGrouped returns an account's positions grouped by date with
// per-group market value totals, sorted by date ascending. Rows without a
// date land in an "Unknown Date" group, matching the original dashboard.
func (s *PositionService) GetPositionsGrouped(ctx context.Context, accountID string) ([]model.PositionGroup, error) {
	positions, err := s.api.Positions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return GroupPositionsByDate(positions), nil
}

// GroupPositionsByDate groups position rows by their date field and sums
// each group's market value.
func GroupPositionsByDate(positions []model.Position) []model.PositionGroup {
	byDate := make(map[string][]model.Position)
	for _, p := range positions {
		date := p.Date
		if date == "" {
			date = "Unknown Date"
		}
		byDate[date] = append(byDate[date], p)
	}

	groups := make([]model.PositionGroup, 0, len(byDate))
	for date, rows := range byDate {
		var total float64
		for _, p := range rows {
			total += p.MarketValue()
		}
		groups = append(groups, model.PositionGroup{
			Date:      date,
			Positions: rows,
			Total:     total,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})
	return groups
}

// CreatePosition validates the payload and creates the position upstream.
func (s *PositionService) CreatePosition(ctx context.Context, req tradeapi.PositionRequest) (model.Position, error) {
	if err := validation.ValidateCreatePosition(req); err != nil {
		return model.Position{}, err
	}
	return s.api.CreatePosition(ctx, req)
}

// DeletePosition deletes the position upstream.
func (s *PositionService) DeletePosition(ctx context.Context, id string) error {
	return s.api.DeletePosition(ctx, id)
}
