package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB // Owned database handle; nil when the App was injected
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db),
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
