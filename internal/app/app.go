package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/fnziad/ZeroTex/internal/config"
	"github.com/fnziad/ZeroTex/internal/database"
	"github.com/fnziad/ZeroTex/internal/logging"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Config *config.Config
	Logger logging.Logger
}

// NewApp loads ~/.zerotex/config.yaml and opens the document store.
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return New(ctx, config.AppConfig, os.Stderr)
}

// New builds an App from an already loaded configuration. Logs go to logOut.
func New(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Initialize(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.DB.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug(ctx, "app ready", "template", cfg.Template, "measurer", cfg.Measurer, "paper", cfg.Paper)

	return &App{
		DB:     database.DB,
		Config: cfg,
		Logger: logger,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
