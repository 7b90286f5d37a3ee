package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/slitherhq/slither/internal/config"
	"github.com/slitherhq/slither/internal/dependencies/clock"
	"github.com/slitherhq/slither/internal/services/auth"
	"github.com/slitherhq/slither/internal/services/leaderboard"
	"github.com/slitherhq/slither/internal/services/score"
	"github.com/slitherhq/slither/internal/storage"
	"github.com/slitherhq/slither/internal/storage/memory"
	redisstorage "github.com/slitherhq/slither/internal/storage/redis"
	"github.com/slitherhq/slither/internal/storage/sqlite"
	"github.com/slitherhq/slither/internal/web/templates"
	"github.com/slitherhq/slither/internal/web/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Store storage.UserStore
	Clock clock.Clock

	AuthService        *auth.Service
	ScoreService       *score.Service
	LeaderboardService *leaderboard.Service
	Hub                *ws.Hub
	Renderer           *templates.Renderer
}

// New creates a new application with all dependencies wired and starts the
// broadcast hub
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.UserStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeSQLite
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		store = sqliteStore
	case StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'sqlite', 'redis' or 'memory'")
	}

	authCfg := auth.Config{SessionDuration: cfg.SessionDuration}

	return newWithDependencies(store, clock.New(), authCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.UserStore, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	renderer, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	authService := auth.New(store, clk, authCfg)
	scoreService := score.New(store, clk, logger)
	leaderboardService := leaderboard.New(store)

	hub := ws.NewHub(logger)
	go hub.Run()

	return &App{
		Store:              store,
		Clock:              clk,
		AuthService:        authService,
		ScoreService:       scoreService,
		LeaderboardService: leaderboardService,
		Hub:                hub,
		Renderer:           renderer,
	}, nil
}

// Close releases the app's resources
func (a *App) Close() error {
	a.Hub.Close()
	return a.Store.Close()
}
