package service

import (
	"context"
	"sort"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// PriceService handles symbol price lookups against the trading backend.
type PriceService struct {
	api *tradeapi.Client
}

// NewPriceService creates a new PriceService
func NewPriceService(api *tradeapi.Client) *PriceService {
	return &PriceService{api: api}
}

// PriceView is the shaped price response served to the dashboard: the raw
// timestamp-keyed history, the latest price, and the history converted to
// a time-ascending series the chart can consume directly.
type PriceView struct {
	Hist   map[string]float64 `json:"hist"`
	Price  model.Number       `json:"price"`
	Series []model.PricePoint `json:"series"`
}

// GetPrices fetches a symbol's price history and shapes it for the chart.
func (s *PriceService) GetPrices(ctx context.Context, symbol string, query tradeapi.PriceQuery) (PriceView, error) {
	prices, err := s.api.Prices(ctx, symbol, query)
	if err != nil {
		return PriceView{}, err
	}

	series := make([]model.PricePoint, 0, len(prices.Hist))
	for ts, price := range prices.Hist {
		series = append(series, model.PricePoint{Time: ts, Price: price})
	}
	// ISO-8601 timestamps sort correctly as strings.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Time < series[j].Time
	})

	return PriceView{
		Hist:   prices.Hist,
		Price:  prices.Price,
		Series: series,
	}, nil
}
