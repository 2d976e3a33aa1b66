package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nataliebakery/storefront/pkg/config"
	"github.com/nataliebakery/storefront/pkg/logger"
)

type contextKey string

const sessionIDKey contextKey = "cart_session_id"

// CartSession assigns every visitor a cart session id carried in a cookie.
// A missing or malformed cookie gets a fresh uuid; the cookie is re-issued on
// every response so its expiry slides with activity.
func CartSession(cfg config.CartConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.SessionCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.SessionTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the cart session id set by CartSession, or ""
// outside of it.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
