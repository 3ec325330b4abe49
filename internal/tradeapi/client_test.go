package tradeapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

func TestListAccounts(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Accounts = []model.Account{
		testutil.NewAccount("ACC-1"),
		testutil.NewAccount("ACC-2"),
	}

	accounts, err := backend.Client().ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}
	if accounts[0].ID != "ACC-1" || accounts[0].Currency != "EUR" {
		t.Errorf("unexpected first account: %+v", accounts[0])
	}
}

func TestAccountHistory(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.History["ACC-1"] = testutil.HistorySeries(0.01, -0.02, 0.03)

	rows, err := backend.Client().AccountHistory(context.Background(), "ACC-1")
	if err != nil {
		t.Fatalf("AccountHistory failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !rows[0].Performance.Valid || rows[0].Performance.Value != 0.01 {
		t.Errorf("unexpected first row performance: %+v", rows[0].Performance)
	}
}

func TestAccountHistoryWithNullFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2024-01-02","value":1000,"performance":null},
			{"date":"2024-01-03","value":"1010.5","performance":"0.0105"}
		]`))
	}))
	defer server.Close()

	client := tradeapi.NewClient(server.URL, 5*time.Second)
	rows, err := client.AccountHistory(context.Background(), "ACC-1")
	if err != nil {
		t.Fatalf("AccountHistory failed: %v", err)
	}
	if rows[0].Performance.Valid {
		t.Error("null performance should decode as invalid")
	}
	if !rows[1].Value.Valid || rows[1].Value.Value != 1010.5 {
		t.Errorf("string-encoded value should decode: %+v", rows[1].Value)
	}
}

func TestTradesBySymbol(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Trades["ACC-1"] = []model.Trade{
		testutil.NewTrade("ACC-1", "AAPL", 10, 150),
		testutil.NewTrade("ACC-1", "MSFT", 5, 300),
		testutil.NewTrade("ACC-1", "AAPL", -4, 160),
	}

	trades, err := backend.Client().TradesBySymbol(context.Background(), "ACC-1", "AAPL")
	if err != nil {
		t.Fatalf("TradesBySymbol failed: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}
	for _, trade := range trades {
		if trade.Symbol != "AAPL" {
			t.Errorf("unexpected symbol %q", trade.Symbol)
		}
	}
}

func TestPricesQueryParameters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hist":{"2024-01-02T00:00:00":101.5},"price":102}`))
	}))
	defer server.Close()

	client := tradeapi.NewClient(server.URL, 5*time.Second)
	prices, err := client.Prices(context.Background(), "AAPL", tradeapi.PriceQuery{
		Account: "ACC-1",
		Start:   "2024-01-01",
		End:     "2024-12-31",
	})
	if err != nil {
		t.Fatalf("Prices failed: %v", err)
	}
	if gotQuery != "account=ACC-1&end=2024-12-31&start=2024-01-01" {
		t.Errorf("unexpected query string %q", gotQuery)
	}
	if prices.Hist["2024-01-02T00:00:00"] != 101.5 {
		t.Errorf("unexpected hist: %+v", prices.Hist)
	}
	if !prices.Price.Valid || prices.Price.Value != 102 {
		t.Errorf("unexpected price: %+v", prices.Price)
	}
}

func TestCheckCredentials(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.Users["alice"] = "s3cret"

	client := backend.Client()

	t.Run("valid pair", func(t *testing.T) {
		ok, err := client.CheckCredentials(context.Background(), "alice", "s3cret")
		if err != nil {
			t.Fatalf("CheckCredentials failed: %v", err)
		}
		if !ok {
			t.Error("expected acceptance")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := client.CheckCredentials(context.Background(), "alice", "wrong")
		if err != nil {
			t.Fatalf("CheckCredentials failed: %v", err)
		}
		if ok {
			t.Error("expected rejection")
		}
	})
}

func TestStatusErrorOnFailure(t *testing.T) {
	backend := testutil.NewMockBackend(t)
	backend.FailWith = http.StatusInternalServerError

	_, err := backend.Client().ListAccounts(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, apperrors.ErrBackendStatus) {
		t.Errorf("error should unwrap to ErrBackendStatus, got %v", err)
	}

	var statusErr *tradeapi.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error should be a *StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", statusErr.Code)
	}
}

func TestUnavailableBackend(t *testing.T) {
	// A server that is closed immediately leaves a refused port behind.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := tradeapi.NewClient(server.URL, time.Second)
	_, err := client.ListAccounts(context.Background())
	if !errors.Is(err, apperrors.ErrBackendUnavailable) {
		t.Errorf("error should unwrap to ErrBackendUnavailable, got %v", err)
	}
}

func TestDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := tradeapi.NewClient(server.URL, time.Second)
	_, err := client.ListAccounts(context.Background())
	if !errors.Is(err, apperrors.ErrBackendDecode) {
		t.Errorf("error should unwrap to ErrBackendDecode, got %v", err)
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	backend := testutil.NewMockBackend(t)

	if err := backend.Client().DeleteAccount(context.Background(), "ACC-1"); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if backend.Requests[0] != "DELETE /api/accounts/ACC-1" {
		t.Errorf("unexpected request %q", backend.Requests[0])
	}
}

func TestCreateTradeEchoesBody(t *testing.T) {
	backend := testutil.NewMockBackend(t)

	trade, err := backend.Client().CreateTrade(context.Background(), tradeapi.TradeRequest{
		Account:  "ACC-1",
		Quantity: 10,
		Price:    150.5,
		Status:   "executed",
		Symbol:   "AAPL",
		Action:   "buy",
		Date:     "2024-01-02",
	})
	if err != nil {
		t.Fatalf("CreateTrade failed: %v", err)
	}
	if trade.Account != "ACC-1" || trade.Symbol != "AAPL" {
		t.Errorf("unexpected echo: %+v", trade)
	}
	if !trade.Price.Valid || trade.Price.Value != 150.5 {
		t.Errorf("unexpected price: %+v", trade.Price)
	}
}
