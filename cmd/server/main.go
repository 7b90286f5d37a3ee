package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slitherhq/slither/internal/config"
	"github.com/slitherhq/slither/internal/factory"
	"github.com/slitherhq/slither/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addrHost    string
		addrPort    int
		storageType string
		sqlitePath  string
		staticDir   string
	)

	rootCmd := &cobra.Command{
		Use:   "slither",
		Short: "Snake game web server",
		Long: `slither serves the browser snake game: user accounts, the persistent
high-score leaderboard, and the realtime websocket channel.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override environment values when set
			if cmd.Flags().Changed("host") {
				cfg.Host = addrHost
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = addrPort
			}
			if cmd.Flags().Changed("storage") {
				cfg.StorageType = storageType
			}
			if cmd.Flags().Changed("db") {
				cfg.SQLitePath = sqlitePath
			}
			if cmd.Flags().Changed("static-dir") {
				cfg.StaticDir = staticDir
			}

			return run(cfg)
		},
	}

	rootCmd.Flags().StringVar(&addrHost, "host", "", "Listen host (env: HOST)")
	rootCmd.Flags().IntVar(&addrPort, "port", 8080, "Listen port (env: PORT)")
	rootCmd.Flags().StringVar(&storageType, "storage", "sqlite", "Storage backend: sqlite, redis or memory (env: STORAGE_TYPE)")
	rootCmd.Flags().StringVar(&sqlitePath, "db", "snake.db", "SQLite database path (env: SQLITE_PATH)")
	rootCmd.Flags().StringVar(&staticDir, "static-dir", "internal/web/static", "Static assets directory (env: STATIC_DIR)")

	return rootCmd
}

func run(cfg config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	app, err := factory.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close error", slog.String("error", err.Error()))
		}
	}()

	router := web.NewRouter(web.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		LeaderboardService: app.LeaderboardService,
		ScoreService:       app.ScoreService,
		Hub:                app.Hub,
		Renderer:           app.Renderer,
		StaticDir:          cfg.StaticDir,
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := web.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
