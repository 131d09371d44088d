package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/database"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Logger shared with the services
	Logger *slog.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
	CardService  cardservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		repo:         repo,
		Logger:       cfg.logger,
		BoardService: boardservice.NewService(repo, cfg.logger),
		CardService:  cardservice.NewService(repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The database handle belongs to the caller and is not closed here.
func (a *App) Close() error {
	return nil
}
