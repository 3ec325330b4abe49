package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

func TestGetPricesShapesSeries(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Prices["AAPL"] = model.PriceHistory{
		Hist: map[string]float64{
			"2024-01-04T00:00:00": 103,
			"2024-01-02T00:00:00": 101,
			"2024-01-03T00:00:00": 102,
		},
		Price: model.Num(103.5),
	}
	svc := NewPriceService(backend.Client())

	view, err := svc.GetPrices(context.Background(), "AAPL", tradeapi.PriceQuery{})
	if err != nil {
		t.Fatalf("GetPrices failed: %v", err)
	}

	if len(view.Series) != 3 {
		t.Fatalf("got %d points, want 3", len(view.Series))
	}
	// The map becomes a time-ascending series.
	for i := 1; i < len(view.Series); i++ {
		if view.Series[i-1].Time >= view.Series[i].Time {
			t.Errorf("series out of order at %d: %q >= %q", i, view.Series[i-1].Time, view.Series[i].Time)
		}
	}
	if view.Series[0].Price != 101 || view.Series[2].Price != 103 {
		t.Errorf("unexpected series: %+v", view.Series)
	}
	if !view.Price.Valid || view.Price.Value != 103.5 {
		t.Errorf("unexpected latest price: %+v", view.Price)
	}
	if len(view.Hist) != 3 {
		t.Errorf("raw hist lost entries: %+v", view.Hist)
	}
}

func TestGetPricesUnknownSymbol(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	svc := NewPriceService(backend.Client())

	_, err := svc.GetPrices(context.Background(), "NOPE", tradeapi.PriceQuery{})
	if !errors.Is(err, apperrors.ErrBackendStatus) {
		t.Errorf("err = %v, want ErrBackendStatus", err)
	}
}
