package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB // nil when the repository is bound to a transaction
	*BoardRepo
	*ColumnRepo
	*CardRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	repo := newRepository(db)
	repo.db = db
	return repo
}

func newRepository(q querier) *Repository {
	columns := &ColumnRepo{db: q}
	return &Repository{
		BoardRepo:  &BoardRepo{db: q, columns: columns},
		ColumnRepo: columns,
		CardRepo:   &CardRepo{db: q},
	}
}

// WithinTx runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
// Calls nested inside fn reuse the outer transaction.
func (r *Repository) WithinTx(ctx context.Context, fn func(DataStore) error) error {
	if r.db == nil {
		return fn(r)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(newRepository(tx))
	})
}

// Wrapper methods for BoardRepo
func (r *Repository) CreateBoard(ctx context.Context, board *models.Board) error {
	return r.BoardRepo.Create(ctx, board)
}

func (r *Repository) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	return r.BoardRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return r.BoardRepo.GetAll(ctx)
}

func (r *Repository) DeleteBoard(ctx context.Context, id int) error {
	return r.BoardRepo.Delete(ctx, id)
}

func (r *Repository) GetBoardDetail(ctx context.Context, id int) (*models.BoardDetail, error) {
	return r.BoardRepo.GetDetail(ctx, id)
}

// Wrapper methods for ColumnRepo
func (r *Repository) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	return r.ColumnRepo.GetByBoard(ctx, boardID)
}

func (r *Repository) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	return r.ColumnRepo.GetByID(ctx, id)
}

func (r *Repository) ListColumnsForBoard(ctx context.Context, boardID int) (models.BoardColumns, error) {
	return r.ColumnRepo.ListInfo(ctx, boardID)
}

// Wrapper methods for CardRepo
func (r *Repository) CreateCard(ctx context.Context, card *models.Card) error {
	return r.CardRepo.Create(ctx, card)
}

func (r *Repository) FindCardByID(ctx context.Context, id int) (*models.Card, error) {
	return r.CardRepo.FindByID(ctx, id)
}

func (r *Repository) SaveCard(ctx context.Context, card *models.Card) error {
	return r.CardRepo.Save(ctx, card)
}

func (r *Repository) GetCardDetail(ctx context.Context, id int) (*models.CardDetail, error) {
	return r.CardRepo.GetDetail(ctx, id)
}

func (r *Repository) GetCardSummariesByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error) {
	return r.CardRepo.GetSummariesByColumn(ctx, columnID)
}
