// File: internal/middleware/session.go
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/BetterMindLabs/AI-Medical-Chatbot/internal/auth"
)

const sessionCookieName = "chat_session"

// NewSessionMiddleware attaches an anonymous session id to every request.
// A valid cookie is reused; anything missing or unverifiable gets a freshly
// minted id. This is identity for state partitioning, not authentication.
func NewSessionMiddleware(secretKey string) func(http.Handler) http.Handler {
	secret := []byte(secretKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""

			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				if id, err := auth.ValidateSessionToken(cookie.Value, secret); err == nil {
					sessionID = id
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				token, err := auth.GenerateSessionToken(sessionID, secret)
				if err != nil {
					http.Error(w, "Could not establish session", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(7 * 24 * time.Hour),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext extracts the session id set by the middleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}
