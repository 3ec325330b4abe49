package service

import (
	"context"
	"strings"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
	"github.com/andrealuzzi/tradingweb/internal/session"
	"github.com/andrealuzzi/tradingweb/internal/tradeapi"
)

// AuthService handles the login gate: it verifies credentials against the
// trading backend and issues session tokens for the dashboard.
type AuthService struct {
	api      *tradeapi.Client
	sessions *session.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(api *tradeapi.Client, sessions *session.Manager) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Login checks the username/password pair with the backend and, when
// accepted, returns a signed session token. A backend rejection returns
// apperrors.ErrInvalidCredentials; backend failures pass through so the
// caller can distinguish "wrong password" from "backend down".
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	ok, err := s.api.CheckCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.sessions.Issue(username)
}

// Verify checks a session token and returns its claims.
func (s *AuthService) Verify(token string) (session.Claims, error) {
	return s.sessions.Verify(token)
}

// SessionTTL exposes the session lifetime for cookie expiry.
func (s *AuthService) SessionTTL() int {
	return int(s.sessions.TTL().Seconds())
}
