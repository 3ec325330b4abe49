package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

func newTradeFixture(t *testing.T) (*TradeHandler, *testutil.MockBackend) {
	t.Helper()
	backend := testutil.NewMockBackend(t)
	return NewTradeHandler(service.NewTradeService(backend.Client())), backend
}

func TestGetTrades(t *testing.T) {
	handler, backend := newTradeFixture(t)
	backend.Trades["ACC-1"] = []model.Trade{
		testutil.NewTrade("ACC-1", "AAPL", 10, 150),
		testutil.NewTrade("ACC-1", "MSFT", 5, 300),
	}

	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/trades/ACC-1", map[string]string{"accountId": "ACC-1"})
	w := httptest.NewRecorder()
	handler.GetTrades(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var trades []model.Trade
	testutil.DecodeJSON(t, w, &trades)
	if len(trades) != 2 {
		t.Errorf("got %d trades, want 2", len(trades))
	}
}

func TestGetTradesBySymbol(t *testing.T) {
	handler, backend := newTradeFixture(t)
	backend.Trades["ACC-1"] = []model.Trade{
		testutil.NewTrade("ACC-1", "AAPL", 10, 150),
		testutil.NewTrade("ACC-1", "MSFT", 5, 300),
	}

	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/trades/ACC-1/AAPL",
		map[string]string{"accountId": "ACC-1", "symbol": "AAPL"})
	w := httptest.NewRecorder()
	handler.GetTradesBySymbol(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var trades []model.Trade
	testutil.DecodeJSON(t, w, &trades)
	if len(trades) != 1 || trades[0].Symbol != "AAPL" {
		t.Errorf("unexpected trades: %+v", trades)
	}
}

func TestCreateTrade(t *testing.T) {
	handler, _ := newTradeFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/trades", tradeapi.TradeRequest{
		Account:  "ACC-1",
		Quantity: 10,
		Price:    150.5,
		Status:   "executed",
		Symbol:   "AAPL",
		Action:   "buy",
		Date:     "2024-01-02",
	}, nil)
	w := httptest.NewRecorder()
	handler.CreateTrade(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var trade model.Trade
	testutil.DecodeJSON(t, w, &trade)
	if trade.Symbol != "AAPL" || trade.Action != "buy" {
		t.Errorf("unexpected echo: %+v", trade)
	}
}

func TestCreateTradeValidation(t *testing.T) {
	handler, backend := newTradeFixture(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/trades", tradeapi.TradeRequest{
		Symbol: "AAPL",
	}, nil)
	w := httptest.NewRecorder()
	handler.CreateTrade(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if backend.RequestCount() != 0 {
		t.Errorf("backend saw %d requests, want 0", backend.RequestCount())
	}
}
