// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/quadro/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the services.
// Lookups of missing entities return errors wrapping the models.Err*NotFound sentinels.
type DataStore interface {
	// Boards
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
	GetBoardDetail(ctx context.Context, id int) (*models.BoardDetail, error)

	// Columns
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	ListColumnsForBoard(ctx context.Context, boardID int) (models.BoardColumns, error)

	// Cards
	CreateCard(ctx context.Context, card *models.Card) error
	FindCardByID(ctx context.Context, id int) (*models.Card, error)
	SaveCard(ctx context.Context, card *models.Card) error
	GetCardDetail(ctx context.Context, id int) (*models.CardDetail, error)
	GetCardSummariesByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error)

	// Transactions
	WithinTx(ctx context.Context, fn func(DataStore) error) error
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
