package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/stats"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// HistoryService fetches account history series and derives performance
// statistics from them.
type HistoryService struct {
	api    *tradeapi.Client
	engine *stats.Engine
}

// NewHistoryService creates a new HistoryService using the given
// statistics engine.
func NewHistoryService(api *tradeapi.Client, engine *stats.Engine) *HistoryService {
	return &HistoryService{api: api, engine: engine}
}

// GetHistory returns the raw history series for an account.
func (s *HistoryService) GetHistory(ctx context.Context, accountID string) ([]model.HistoryRow, error) {
	return s.api.AccountHistory(ctx, accountID)
}

// GetStatistics fetches an account's history and computes the full
// statistics result over it. Statistics are recomputed from scratch on
// every call; nothing is cached.
func (s *HistoryService) GetStatistics(ctx context.Context, accountID string) (stats.Result, error) {
	rows, err := s.api.AccountHistory(ctx, accountID)
	if err != nil {
		return stats.Result{}, err
	}
	return s.engine.Compute(rows), nil
}

// AccountOverview aggregates everything the dashboard shows for one
// account. Each section that failed to load is empty, with the failure
// recorded under its name in Errors; one broken section never blanks the
// whole view.
type AccountOverview struct {
	AccountID  string                `json:"account_id"`
	History    []model.HistoryRow    `json:"history"`
	Statistics stats.Result          `json:"statistics"`
	Positions  []model.PositionGroup `json:"positions"`
	Trades     []model.Trade         `json:"trades"`
	Orders     []model.Order         `json:"orders"`
	Errors     map[string]string     `json:"errors,omitempty"`
}

// GetOverview fetches history, positions, trades, and orders for an
// account concurrently and assembles the overview. Individual failures
// degrade that section to empty rather than failing the call; only a
// cancelled context aborts the whole fan-out.
func (s *HistoryService) GetOverview(ctx context.Context, accountID string) (AccountOverview, error) {
	overview := AccountOverview{AccountID: accountID}
	var histErr, posErr, tradeErr, orderErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var rows []model.HistoryRow
		rows, histErr = s.api.AccountHistory(gctx, accountID)
		if histErr == nil {
			overview.History = rows
			overview.Statistics = s.engine.Compute(rows)
		}
		return nil
	})
	g.Go(func() error {
		var positions []model.Position
		positions, posErr = s.api.Positions(gctx, accountID)
		if posErr == nil {
			overview.Positions = GroupPositionsByDate(positions)
		}
		return nil
	})
	g.Go(func() error {
		overview.Trades, tradeErr = s.api.Trades(gctx, accountID)
		return nil
	})
	g.Go(func() error {
		overview.Orders, orderErr = s.api.Orders(gctx, accountID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return AccountOverview{}, err
	}
	if err := ctx.Err(); err != nil {
		return AccountOverview{}, err
	}

	errs := make(map[string]string)
	for name, err := range map[string]error{
		"history":   histErr,
		"positions": posErr,
		"trades":    tradeErr,
		"orders":    orderErr,
	} {
		if err != nil {
			errs[name] = err.Error()
		}
	}
	if len(errs) > 0 {
		overview.Errors = errs
	}

	if overview.History == nil {
		overview.History = []model.HistoryRow{}
	}
	if histErr != nil {
		// Keep the statistics well-defined for an empty series.
		overview.Statistics = s.engine.Compute(nil)
	}
	if overview.Positions == nil {
		overview.Positions = []model.PositionGroup{}
	}
	if overview.Trades == nil {
		overview.Trades = []model.Trade{}
	}
	if overview.Orders == nil {
		overview.Orders = []model.Order{}
	}

	return overview, nil
}
