package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/slitherhq/slither/internal/model"
	"github.com/slitherhq/slither/internal/services/auth"
)

type contextKey string

const (
	userContextKey contextKey = "user"
)

// GetUser retrieves the authenticated user from the request context.
// Returns nil if no user is authenticated.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// Auth returns middleware that requires authentication.
// Redirects to the login page if not authenticated.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := getUserFromSession(r, authService)
			if user == nil {
				redirectURL := "/login?next=" + url.QueryEscape(r.URL.Path)
				http.Redirect(w, r, redirectURL, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't require it.
// Sets the user in context if authenticated, nil otherwise.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := getUserFromSession(r, authService)
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AnonOnly returns middleware for pages that only make sense logged out
// (login, register). Authenticated users are sent home.
func AnonOnly(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := getUserFromSession(r, authService); user != nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getUserFromSession(r *http.Request, authService *auth.Service) *model.User {
	cookie, err := r.Cookie("session")
	if err != nil {
		return nil
	}

	user, err := authService.GetUser(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return user
}
