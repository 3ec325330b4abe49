package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestThemeDefaultsToLight(t *testing.T) {
	store, _ := openTestStore(t)

	theme, err := store.Theme(context.Background())
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != DefaultTheme {
		t.Errorf("theme = %q, want %q", theme, DefaultTheme)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, err := store.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("theme = %q, want dark", theme)
	}

	// Flipping back overwrites, not duplicates.
	if err := store.SetTheme(ctx, "light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, _ = store.Theme(ctx)
	if theme != "light" {
		t.Errorf("theme = %q, want light", theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.SetTheme(context.Background(), "solarized")
	if !errors.Is(err, apperrors.ErrInvalidTheme) {
		t.Errorf("err = %v, want ErrInvalidTheme", err)
	}
}

func TestThemeSurvivesReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	if err := store.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	theme, err := reopened.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("theme after reopen = %q, want dark", theme)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, _ := openTestStore(t)

	_, ok, err := store.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true for a key that was never set")
	}
}

func TestPing(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
