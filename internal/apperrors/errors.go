// Package apperrors defines the sentinel errors shared across the dashboard
// server. Handlers translate these into HTTP status codes and JSON error
// responses; services wrap them with %w to add context.
package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities.
// These errors indicate that a requested resource does not exist upstream.
var (
	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAssetNotFound indicates that an asset with the given symbol does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrPositionNotFound indicates that a position with the given ID does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrSymbolNotFound indicates that a price lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidTheme indicates a theme value other than "light" or "dark".
	ErrInvalidTheme = errors.New("theme must be \"light\" or \"dark\"")

	// ErrInvalidCredentials indicates the backend rejected the username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession indicates a missing, malformed, or expired session token.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Upstream errors represent failures talking to the trading backend. The
// dashboard never retries; callers degrade to an empty result and surface
// the condition (see the refresh snapshots and the overview fan-out).
var (
	// ErrBackendUnavailable indicates a transport-level failure reaching the backend.
	ErrBackendUnavailable = errors.New("trading backend unavailable")

	// ErrBackendStatus indicates the backend answered with a non-2xx status.
	ErrBackendStatus = errors.New("trading backend returned an error status")

	// ErrBackendDecode indicates the backend response was not the expected JSON shape.
	ErrBackendDecode = errors.New("failed to decode trading backend response")
)

// Operation failure errors represent system-level failures local to the
// dashboard server.
var (
	// ErrFailedToLoadSettings indicates the settings store could not be read.
	ErrFailedToLoadSettings = errors.New("failed to load settings")

	// ErrFailedToSaveSettings indicates the settings store could not be written.
	ErrFailedToSaveSettings = errors.New("failed to save settings")
)
