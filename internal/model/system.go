package model

// VersionInfo contains version information for the dashboard server.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	BackendURL string `json:"backend_url"`
}
