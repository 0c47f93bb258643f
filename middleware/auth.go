package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"roster/models"
	"roster/services"
	"roster/store"
)

type contextKey string

const userContextKey contextKey = "current_user"

// RequireAuth gates a route behind an authenticated session. The user row is
// re-fetched on every request so profile edits and deletions take effect
// immediately; the resolved user is placed on the request context for the
// wrapped handler.
func RequireAuth(sessions *services.SessionManager, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.CurrentUserID(r)
			if !ok {
				redirectToLogin(w, r, "user not authenticated")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				redirectToLogin(w, r, "session user not found")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil on
// unguarded routes.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	slog.Debug("Redirecting to login", "reason", reason, "path", r.URL.Path)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
