package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// MockBackend is an httptest server that simulates the remote trading API.
// Fixtures are plain exported fields; set them before exercising the code
// under test, or mutate them between subtests. All access is mutex guarded
// so handlers under test may call concurrently.
type MockBackend struct {
	mu sync.Mutex

	Accounts  []model.Account
	Owners    []model.Owner
	Assets    []model.Asset
	History   map[string][]model.HistoryRow // keyed by account ID
	Positions map[string][]model.Position   // keyed by account ID
	Trades    map[string][]model.Trade      // keyed by account ID
	Orders    map[string][]model.Order      // keyed by account ID
	Prices    map[string]model.PriceHistory // keyed by symbol
	Users     map[string]string             // username -> password

	// FailWith, when non-zero, makes every route answer with that status.
	FailWith int

	// Requests records the method and path of every call, in order.
	Requests []string

	server *httptest.Server
}

// NewMockBackend starts a mock trading backend. The server is shut down
// automatically when the test finishes.
func NewMockBackend(t *testing.T) *MockBackend {
	t.Helper()

	m := &MockBackend{
		History:   make(map[string][]model.HistoryRow),
		Positions: make(map[string][]model.Position),
		Trades:    make(map[string][]model.Trade),
		Orders:    make(map[string][]model.Order),
		Prices:    make(map[string]model.PriceHistory),
		Users:     make(map[string]string),
	}

	r := chi.NewRouter()
	r.Use(m.record)

	r.Get("/api/accounts", m.listAccounts)
	r.Post("/api/accounts", m.echoJSON)
	r.Put("/api/accounts/{id}", m.echoJSON)
	r.Delete("/api/accounts/{id}", m.noContent)

	r.Get("/api/owners", m.listOwners)

	r.Get("/api/assets", m.listAssets)
	r.Post("/api/assets", m.echoJSON)
	r.Put("/api/assets/{symbol}", m.noContent)
	r.Delete("/api/assets/{symbol}", m.noContent)

	r.Get("/api/accounthist/{accountId}", m.accountHistory)

	r.Get("/api/positions/{accountId}", m.listPositions)
	r.Post("/api/positions", m.echoJSON)
	r.Delete("/api/positions/{id}", m.noContent)

	r.Get("/api/trades/{accountId}", m.listTrades)
	r.Get("/api/trades/{accountId}/{symbol}", m.listTradesBySymbol)
	r.Post("/api/trades", m.echoJSON)

	r.Get("/api/orders/{accountId}", m.listOrders)
	r.Post("/api/orders", m.echoJSON)

	r.Get("/api/prices/{symbol}", m.prices)

	r.Post("/api/users/check_credentials", m.checkCredentials)

	m.server = httptest.NewServer(r)
	t.Cleanup(m.server.Close)

	return m
}

// URL returns the base URL of the mock server.
func (m *MockBackend) URL() string {
	return m.server.URL
}

// Client returns a trading API client pointed at the mock.
func (m *MockBackend) Client() *tradeapi.Client {
	return tradeapi.NewClient(m.server.URL, 5*time.Second)
}

// RequestCount returns how many calls the mock has served so far.
func (m *MockBackend) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

func (m *MockBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.Requests = append(m.Requests, r.Method+" "+r.URL.Path)
		fail := m.FailWith
		m.mu.Unlock()

		if fail != 0 {
			http.Error(w, `{"error":"injected failure"}`, fail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *MockBackend) respond(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (m *MockBackend) listAccounts(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.respond(w, m.Accounts)
}

func (m *MockBackend) listOwners(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.respond(w, m.Owners)
}

func (m *MockBackend) listAssets(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.respond(w, m.Assets)
}

func (m *MockBackend) accountHistory(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.History[chi.URLParam(r, "accountId")]
	if rows == nil {
		rows = []model.HistoryRow{}
	}
	m.respond(w, rows)
}

func (m *MockBackend) listPositions(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	positions := m.Positions[chi.URLParam(r, "accountId")]
	if positions == nil {
		positions = []model.Position{}
	}
	m.respond(w, positions)
}

func (m *MockBackend) listTrades(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trades := m.Trades[chi.URLParam(r, "accountId")]
	if trades == nil {
		trades = []model.Trade{}
	}
	m.respond(w, trades)
}

func (m *MockBackend) listTradesBySymbol(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	symbol := chi.URLParam(r, "symbol")
	filtered := []model.Trade{}
	for _, trade := range m.Trades[chi.URLParam(r, "accountId")] {
		if trade.Symbol == symbol {
			filtered = append(filtered, trade)
		}
	}
	m.respond(w, filtered)
}

func (m *MockBackend) listOrders(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := m.Orders[chi.URLParam(r, "accountId")]
	if orders == nil {
		orders = []model.Order{}
	}
	m.respond(w, orders)
}

func (m *MockBackend) prices(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prices, ok := m.Prices[chi.URLParam(r, "symbol")]
	if !ok {
		http.Error(w, `{"error":"symbol not found"}`, http.StatusNotFound)
		return
	}
	m.respond(w, prices)
}

func (m *MockBackend) checkCredentials(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	password, ok := m.Users[creds.Username]
	m.mu.Unlock()

	result := 0
	if ok && password == creds.Password {
		result = 1
	}
	m.respond(w, map[string]int{"result": result})
}

// echoJSON answers create and update calls by echoing the request body,
// the same contract the real backend follows.
func (m *MockBackend) echoJSON(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(body)
}

func (m *MockBackend) noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
