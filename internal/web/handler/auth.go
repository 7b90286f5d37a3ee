package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/slitherhq/slither/internal/services/auth"
	"github.com/slitherhq/slither/internal/web/middleware"
	"github.com/slitherhq/slither/internal/web/templates"
)

const sessionCookieName = "session"

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
	renderer    *templates.Renderer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, renderer *templates.Renderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		renderer:    renderer,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r, "Login")
	data.Title = data.T["title"]
	renderPage(w, r, h.renderer, "login.html", data)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r, "Register")
	data.Title = data.T["register"]
	renderPage(w, r, h.renderer, "register.html", data)
}

// Register handles registration form submission. Errors are surfaced as a
// flash notice plus a redirect back to the form; success redirects to login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "danger", "Invalid form data")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirm_password")

	if username == "" || password == "" {
		middleware.SetFlash(w, "danger", "Username and password are required")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if password != confirmPassword {
		middleware.SetFlash(w, "danger", "Passwords do not match")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if _, err := h.authService.Register(r.Context(), username, password); err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			middleware.SetFlash(w, "danger", "Username already exists")
		} else {
			middleware.SetFlash(w, "danger", "Registration failed")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Registration successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "danger", "Invalid form data")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")
	if next == "" {
		next = r.URL.Query().Get("next")
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		middleware.SetFlash(w, "danger", "Invalid username or password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, session.Token)

	// Redirect to original destination or home. The form/query value is
	// already decoded once; decoding it again would let a double-encoded
	// value slip past the local-path check.
	if next != "" && strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout tears down the current session. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
