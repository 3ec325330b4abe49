// Package version carries the build version of the dashboard server.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/andrealuzzi/tradingweb/internal/version.Version=...".
var Version = "dev"
