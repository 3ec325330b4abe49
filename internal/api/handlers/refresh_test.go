package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/refresh"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
)

func TestRefreshKnownKind(t *testing.T) {
	poller := refresh.New(time.Minute, 10*time.Minute)
	var fetches int
	poller.Register(refresh.KindHistory, func(ctx context.Context, accountID string) (interface{}, error) {
		fetches++
		return "series", nil
	})
	handler := NewRefreshHandler(poller)

	req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/refresh/history/ACC-1",
		map[string]string{"kind": "history", "accountId": "ACC-1"})
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1", fetches)
	}
	var snap refresh.Snapshot
	testutil.DecodeJSON(t, w, &snap)
	if snap.Loading || snap.Data != "series" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestRefreshUnknownKind(t *testing.T) {
	handler := NewRefreshHandler(refresh.New(time.Minute, 10*time.Minute))

	req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/refresh/quotes/ACC-1",
		map[string]string{"kind": "quotes", "accountId": "ACC-1"})
	w := httptest.NewRecorder()
	handler.Refresh(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
