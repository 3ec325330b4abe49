package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/service"
	"github.com/andrealuzzi/tradingweb/internal/session"
)

// AuthHandler handles the login gate.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CheckCredentialsRequest is the login payload.
type CheckCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CheckCredentialsResponse mirrors the backend's result flag so the
// original login form keeps working unchanged.
type CheckCredentialsResponse struct {
	Result int `json:"result"`
}

// CheckCredentials verifies a username/password pair with the trading
// backend. On success it answers result=1 and sets the session cookie; a
// rejected pair answers result=0 with 200, matching the upstream contract.
// Backend failures are reported as errors, not rejections.
//
// Endpoint: POST /api/users/check_credentials
func (h *AuthHandler) CheckCredentials(w http.ResponseWriter, r *http.Request) {
	var req CheckCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondJSON(w, http.StatusOK, CheckCredentialsResponse{Result: 0})
			return
		}
		response.RespondServiceError(w, "failed to check credentials", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.authService.SessionTTL(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	response.RespondJSON(w, http.StatusOK, CheckCredentialsResponse{Result: 1})
}
