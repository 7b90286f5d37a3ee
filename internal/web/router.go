package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/slitherhq/slither/internal/services/auth"
	"github.com/slitherhq/slither/internal/services/leaderboard"
	"github.com/slitherhq/slither/internal/services/score"
	"github.com/slitherhq/slither/internal/web/handler"
	"github.com/slitherhq/slither/internal/web/middleware"
	"github.com/slitherhq/slither/internal/web/templates"
	"github.com/slitherhq/slither/internal/web/ws"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
	ScoreService       *score.Service
	Hub                *ws.Hub
	Renderer           *templates.Renderer
	StaticDir          string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	langMiddleware := middleware.Lang()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	anonOnlyMiddleware := middleware.AnonOnly(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Renderer)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Renderer)
	gameHandler := handler.NewGameHandler(cfg.Renderer)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.Renderer, cfg.Logger)
	languageHandler := handler.NewLanguageHandler()
	wsHandler := ws.NewHandler(cfg.Hub, cfg.AuthService, cfg.ScoreService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Realtime channel; the handler resolves the session cookie itself
	r.HandleFunc("/ws", wsHandler.Serve).Methods(http.MethodGet)

	// Public routes (optional auth for showing the user in nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(langMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/leaderboard", leaderboardHandler.Leaderboard).Methods(http.MethodGet)
	public.HandleFunc("/set_language/{lang}", languageHandler.SetLanguage).Methods(http.MethodGet)

	// Login and register are for anonymous visitors only
	anon := r.NewRoute().Subrouter()
	anon.Use(flashMiddleware)
	anon.Use(langMiddleware)
	anon.Use(anonOnlyMiddleware)
	anon.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	anon.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	anon.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	anon.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(langMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/game", gameHandler.Game).Methods(http.MethodGet)
	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	return r
}
