package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
)

func TestGetPrices(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Prices["AAPL"] = model.PriceHistory{
		Hist: map[string]float64{
			"2024-01-02T00:00:00": 101,
			"2024-01-03T00:00:00": 102,
		},
		Price: model.Num(102.5),
	}
	handler := NewPriceHandler(service.NewPriceService(backend.Client()))

	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prices/AAPL", map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()
	handler.GetPrices(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var view service.PriceView
	testutil.DecodeJSON(t, w, &view)
	if len(view.Hist) != 2 || len(view.Series) != 2 {
		t.Errorf("unexpected view: %+v", view)
	}
	if view.Series[0].Time != "2024-01-02T00:00:00" {
		t.Errorf("series not sorted: %+v", view.Series)
	}
	if !view.Price.Valid || view.Price.Value != 102.5 {
		t.Errorf("unexpected price: %+v", view.Price)
	}
}

func TestGetPricesUnknownSymbol(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	handler := NewPriceHandler(service.NewPriceService(backend.Client()))

	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/prices/NOPE", map[string]string{"symbol": "NOPE"})
	w := httptest.NewRecorder()
	handler.GetPrices(w, req)

	// The 404 from the backend passes through.
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
