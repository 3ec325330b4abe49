package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

func TestGroupPositionsByDate(t *testing.T) {
	positions := []model.Position{
		testutil.NewPosition("ACC-1", "AAPL", 10, 150),
		testutil.NewPosition("ACC-1", "MSFT", 2, 300),
		{
			ID:       "pos-3",
			Account:  "ACC-1",
			Symbol:   "GOOG",
			Quantity: model.Num(1),
			AvgPrice: model.Num(140),
			Date:     "2024-01-05",
		},
	}

	groups := GroupPositionsByDate(positions)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// Sorted ascending by date string.
	if groups[0].Date != "2024-01-02" || groups[1].Date != "2024-01-05" {
		t.Errorf("group dates = %q, %q", groups[0].Date, groups[1].Date)
	}
	if len(groups[0].Positions) != 2 {
		t.Errorf("first group has %d positions, want 2", len(groups[0].Positions))
	}
	if want := 10*150.0 + 2*300.0; math.Abs(groups[0].Total-want) > 1e-9 {
		t.Errorf("first group total = %v, want %v", groups[0].Total, want)
	}
	if math.Abs(groups[1].Total-140) > 1e-9 {
		t.Errorf("second group total = %v, want 140", groups[1].Total)
	}
}

func TestGroupPositionsByDateBucketsMissingDates(t *testing.T) {
	positions := []model.Position{
		{ID: "pos-1", Symbol: "AAPL", Quantity: model.Num(1), AvgPrice: model.Num(100)},
		testutil.NewPosition("ACC-1", "MSFT", 1, 300),
	}

	groups := GroupPositionsByDate(positions)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	var found bool
	for _, g := range groups {
		if g.Date == "Unknown Date" {
			found = true
			if math.Abs(g.Total-100) > 1e-9 {
				t.Errorf("unknown-date total = %v, want 100", g.Total)
			}
		}
	}
	if !found {
		t.Error("no Unknown Date group")
	}
}

func TestGroupPositionsByDateSkipsInvalidNumbers(t *testing.T) {
	positions := []model.Position{
		{ID: "pos-1", Symbol: "AAPL", Quantity: model.Number{}, AvgPrice: model.Num(100), Date: "2024-01-02"},
		testutil.NewPosition("ACC-1", "MSFT", 2, 300),
	}

	groups := GroupPositionsByDate(positions)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	// The row with no quantity contributes zero to the total but still lists.
	if math.Abs(groups[0].Total-600) > 1e-9 {
		t.Errorf("total = %v, want 600", groups[0].Total)
	}
	if len(groups[0].Positions) != 2 {
		t.Errorf("group has %d positions, want 2", len(groups[0].Positions))
	}
}

func TestGetPositionsGrouped(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Positions["ACC-1"] = []model.Position{
		testutil.NewPosition("ACC-1", "AAPL", 10, 150),
	}
	svc := NewPositionService(backend.Client())

	groups, err := svc.GetPositionsGrouped(context.Background(), "ACC-1")
	if err != nil {
		t.Fatalf("GetPositionsGrouped failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Total != 1500 {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestCreatePositionValidates(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	svc := NewPositionService(backend.Client())

	_, err := svc.CreatePosition(context.Background(), tradeapi.PositionRequest{Symbol: "AAPL"})
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	// The invalid payload never reaches the backend.
	if backend.RequestCount() != 0 {
		t.Errorf("backend saw %d requests, want 0", backend.RequestCount())
	}
}
