package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/prefs"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/testutil"
)

func newSettingsHandler(t *testing.T) *SettingsHandler {
	t.Helper()
	store := testutil.SetupTestStore(t)
	return NewSettingsHandler(service.NewSettingsService(store))
}

func TestGetThemeDefault(t *testing.T) {
	handler := newSettingsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings/theme", nil)
	w := httptest.NewRecorder()
	handler.GetTheme(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp ThemeResponse
	testutil.DecodeJSON(t, w, &resp)
	if resp.Theme != prefs.DefaultTheme {
		t.Errorf("theme = %q, want %q", resp.Theme, prefs.DefaultTheme)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	handler := newSettingsHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/settings/theme", ThemeResponse{Theme: "dark"}, nil)
	w := httptest.NewRecorder()
	handler.SetTheme(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("set status = %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/settings/theme", nil)
	w = httptest.NewRecorder()
	handler.GetTheme(w, req)

	var resp ThemeResponse
	testutil.DecodeJSON(t, w, &resp)
	if resp.Theme != "dark" {
		t.Errorf("theme = %q, want dark", resp.Theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	handler := newSettingsHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/settings/theme", ThemeResponse{Theme: "sepia"}, nil)
	w := httptest.NewRecorder()
	handler.SetTheme(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
