package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/andrealuzzi/tradingweb/internal/api/response"
	"github.com/andrealuzzi/tradingweb/internal/session"
)

type contextKey string

// ClaimsContextKey is the request-context key under which the session
// middleware stores the verified session claims.
const ClaimsContextKey contextKey = "session-claims"

// RequireSession returns middleware that rejects requests lacking a valid
// session token. The token is read from the session cookie, or from a
// "Bearer" Authorization header for non-browser clients.
func RequireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "login required", "")
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired session", "")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the session claims stored by RequireSession.
func ClaimsFromContext(ctx context.Context) (session.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(session.Claims)
	return claims, ok
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
