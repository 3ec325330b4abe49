// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses, standardized error responses, and
// the mapping from service-layer errors to HTTP status codes.
package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
	"github.com/andrealuzzi/tradingweb/internal/validation"
)

// ErrorResponse represents a structured error response returned by the API.
// The Details field is optional and can contain additional context about the error.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status code.
// The message should be a user-friendly error description.
// The details parameter can be an error string, additional context, or nil.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
//	response.RespondError(w, http.StatusNotFound, "resource not found", "")
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	response := ErrorResponse{
		Error:   message,
		Details: details,
	}
	RespondJSON(w, status, response)
}

// RespondServiceError translates a service-layer error into an HTTP error
// response: validation failures become 400 with per-field details, backend
// statuses pass through their upstream code, unreachable-backend errors
// become 502, and anything else is a 500.
func RespondServiceError(w http.ResponseWriter, message string, err error) {
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		RespondError(w, http.StatusBadRequest, "validation failed", valErr.Fields)
		return
	}

	var statusErr *tradeapi.StatusError
	if errors.As(err, &statusErr) {
		RespondError(w, statusErr.Code, message, statusErr.Error())
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrBackendUnavailable):
		RespondError(w, http.StatusBadGateway, message, err.Error())
	case errors.Is(err, apperrors.ErrBackendDecode):
		RespondError(w, http.StatusBadGateway, message, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTheme),
		errors.Is(err, apperrors.ErrMissingRequiredField),
		errors.Is(err, apperrors.ErrEmptyID):
		RespondError(w, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		RespondError(w, http.StatusUnauthorized, message, err.Error())
	case errors.Is(err, apperrors.ErrInvalidSession):
		RespondError(w, http.StatusUnauthorized, message, err.Error())
	default:
		RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
