// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend: sqlite, redis or memory
	StorageType string `env:"STORAGE_TYPE" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"snake.db"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"24h"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"internal/web/static"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
