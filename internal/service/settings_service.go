package service

import (
	"context"

	"github.com/andrealuzzi/tradingweb/internal/prefs"
)

// SettingsService handles persisted dashboard preferences.
type SettingsService struct {
	store *prefs.Store
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store *prefs.Store) *SettingsService {
	return &SettingsService{store: store}
}

// GetTheme returns the persisted theme, defaulting to light.
func (s *SettingsService) GetTheme(ctx context.Context) (string, error) {
	return s.store.Theme(ctx)
}

// SetTheme persists the theme preference.
func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	return s.store.SetTheme(ctx, theme)
}
