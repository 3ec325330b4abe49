package service

import (
	"github.com/andrealuzzi/tradingweb/internal/model"
	"github.com/andrealuzzi/tradingweb/internal/prefs"
	"github.com/andrealuzzi/tradingweb/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	store      *prefs.Store
	backendURL string
}

// NewSystemService creates a new SystemService
func NewSystemService(store *prefs.Store, backendURL string) *SystemService {
	return &SystemService{store: store, backendURL: backendURL}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return s.store.Ping()
}

// CheckVersion returns version information for the dashboard server.
func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: version.Version,
		BackendURL: s.backendURL,
	}
}
