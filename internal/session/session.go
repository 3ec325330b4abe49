// Package session issues and verifies login session tokens. Tokens are
// fernet-encrypted so the browser cookie is opaque; the trading backend is
// only consulted once, at login, via its credential-check endpoint.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/andrealuzzi/tradingweb/internal/apperrors"
)

// CookieName is the cookie under which the dashboard stores its session token.
const CookieName = "tradingweb_session"

// Claims is the payload sealed inside a session token.
type Claims struct {
	Username  string    `json:"username"`
	SessionID string    `json:"sid"`
	IssuedAt  time.Time `json:"iat"`
}

// Manager issues and verifies session tokens with a fixed TTL.
type Manager struct {
	keys []*fernet.Key
	ttl  time.Duration
}

// NewManager creates a session manager. encodedKey is a base64 fernet key;
// when empty, a random key is generated, which means sessions do not
// survive a server restart.
func NewManager(encodedKey string, ttl time.Duration) (*Manager, error) {
	var keys []*fernet.Key
	if encodedKey == "" {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		keys = []*fernet.Key{key}
	} else {
		decoded, err := fernet.DecodeKeys(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_KEY: %w", err)
		}
		keys = decoded
	}
	return &Manager{keys: keys, ttl: ttl}, nil
}

// TTL returns the session lifetime, used for the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a token for the given username.
func (m *Manager) Issue(username string) (string, error) {
	claims := Claims{
		Username:  username,
		SessionID: uuid.New().String(),
		IssuedAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session claims: %w", err)
	}
	token, err := fernet.EncryptAndSign(payload, m.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to seal session token: %w", err)
	}
	return string(token), nil
}

// Verify checks a token's signature and age and returns its claims.
// Expired, forged, or malformed tokens return apperrors.ErrInvalidSession.
func (m *Manager) Verify(token string) (Claims, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), m.ttl, m.keys)
	if payload == nil {
		return Claims{}, apperrors.ErrInvalidSession
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, apperrors.ErrInvalidSession
	}
	return claims, nil
}
