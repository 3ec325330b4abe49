package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/prefs"
)

// RandomID returns a fresh UUID string for use as a fixture identifier.
func RandomID() string {
	return uuid.New().String()
}

// HistoryRowBuilder builds history rows with sensible defaults.
type HistoryRowBuilder struct {
	row model.HistoryRow
}

// NewHistoryRow creates a builder for a valid history row dated 2024-01-02
// with a value of 1000 and a flat performance.
func NewHistoryRow() *HistoryRowBuilder {
	return &HistoryRowBuilder{
		row: model.HistoryRow{
			Date:        "2024-01-02",
			Value:       model.Num(1000),
			Performance: model.Num(0),
		},
	}
}

func (b *HistoryRowBuilder) WithDate(date string) *HistoryRowBuilder {
	b.row.Date = date
	return b
}

func (b *HistoryRowBuilder) WithValue(value float64) *HistoryRowBuilder {
	b.row.Value = model.Num(value)
	return b
}

func (b *HistoryRowBuilder) WithPerformance(p float64) *HistoryRowBuilder {
	b.row.Performance = model.Num(p)
	return b
}

// WithInvalidValue clears the value field, simulating a null from the backend.
func (b *HistoryRowBuilder) WithInvalidValue() *HistoryRowBuilder {
	b.row.Value = model.Number{}
	return b
}

// WithInvalidPerformance clears the performance field.
func (b *HistoryRowBuilder) WithInvalidPerformance() *HistoryRowBuilder {
	b.row.Performance = model.Number{}
	return b
}

func (b *HistoryRowBuilder) Build() model.HistoryRow {
	return b.row
}

// HistorySeries builds a dated series of history rows from performance
// values, one trading day apart starting at 2024-01-02. Values compound
// from 1000 so drawdown checks line up with the returns.
func HistorySeries(performances ...float64) []model.HistoryRow {
	dates := []string{
		"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-08",
		"2024-01-09", "2024-01-10", "2024-01-11", "2024-01-12", "2024-01-15",
	}
	value := 1000.0
	rows := make([]model.HistoryRow, 0, len(performances))
	for i, p := range performances {
		date := fmt.Sprintf("2024-02-%02d", i+1)
		if i < len(dates) {
			date = dates[i]
		}
		value *= 1 + p
		rows = append(rows, NewHistoryRow().
			WithDate(date).
			WithValue(value).
			WithPerformance(p).
			Build())
	}
	return rows
}

// NewAccount returns an account fixture with the given ID.
func NewAccount(id string) model.Account {
	return model.Account{
		ID:           id,
		Description:  "Test account " + id,
		Currency:     "EUR",
		AccountGroup: "retirement",
		Owner:        "owner-1",
	}
}

// NewPosition returns a position fixture for the given account and symbol.
func NewPosition(accountID, symbol string, qty, price float64) model.Position {
	return model.Position{
		ID:       RandomID(),
		Account:  accountID,
		Symbol:   symbol,
		Quantity: model.Num(qty),
		AvgPrice: model.Num(price),
		Currency: "EUR",
		Date:     "2024-01-02",
	}
}

// NewTrade returns an executed trade fixture for the given account and symbol.
func NewTrade(accountID, symbol string, qty, price float64) model.Trade {
	return model.Trade{
		ID:       RandomID(),
		Account:  accountID,
		Symbol:   symbol,
		Quantity: model.Num(qty),
		Price:    model.Num(price),
		Action:   "buy",
		Status:   "executed",
		Date:     "2024-01-02",
	}
}

// SetupTestStore opens a preferences store backed by a temp file database.
// Migrations run on open; the store is closed when the test finishes.
func SetupTestStore(t *testing.T) *prefs.Store {
	t.Helper()

	store, err := prefs.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}
