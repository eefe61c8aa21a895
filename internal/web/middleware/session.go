package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/game"
)

type contextKey string

const (
	sessionCookieName = "session"
	sessionContextKey = contextKey("session")
)

// GetSessionID retrieves the game session ID from the request context
func GetSessionID(ctx context.Context) model.SessionID {
	id, _ := ctx.Value(sessionContextKey).(model.SessionID)
	return id
}

// SetSessionCookie points the browser at a game session
func SetSessionCookie(w http.ResponseWriter, id model.SessionID) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    string(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Session returns middleware that attaches the browser's game session to
// the request, starting a new game if the cookie is missing or stale
func Session(controller *game.Controller, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolveSession(r, controller)
			if err != nil {
				logger.Error("failed to resolve game session", slog.String("error", err.Error()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if id == "" {
				result, err := controller.NewSession(r.Context())
				if err != nil {
					logger.Error("failed to start game session", slog.String("error", err.Error()))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				id = result.SessionID
				SetSessionCookie(w, id)
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveSession returns the cookie's session ID if that session still
// exists, or an empty ID if a new one is needed
func resolveSession(r *http.Request, controller *game.Controller) (model.SessionID, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}

	id := model.SessionID(cookie.Value)
	exists, err := controller.SessionExists(r.Context(), id)
	if err != nil || !exists {
		return "", err
	}
	return id, nil
}
