package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, boardID int) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardDetail(ctx context.Context, boardID int) (*models.BoardDetail, error)
	GetColumnDetail(ctx context.Context, boardID, columnID int) (*models.ColumnDetail, error)
	ColumnsInfo(ctx context.Context, boardID int) (models.BoardColumns, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID int) error
}

// CreateBoardRequest names the board and each of its columns.
// PendingColumns may be empty.
type CreateBoardRequest struct {
	Name           string
	InitialColumn  string
	PendingColumns []string
	FinalColumn    string
	CancelColumn   string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new board service. A nil logger means slog.Default().
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// CreateBoard builds the column layout and stores it with the board in one transaction.
// Columns get orders INITIAL=0, PENDING=1..k, FINAL=k+1 and CANCEL=k+2.
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	board, err := buildBoard(req)
	if err != nil {
		return nil, err
	}

	if err := board.ColumnsInfo().Validate(); err != nil {
		return nil, err
	}

	err = s.repo.WithinTx(ctx, func(store database.DataStore) error {
		if err := store.CreateBoard(ctx, board); err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("board created", "board_id", board.ID, "columns", len(board.Columns))
	return board, nil
}

// GetBoard retrieves a board with its columns
func (s *service) GetBoard(ctx context.Context, boardID int) (*models.Board, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetBoardByID(ctx, boardID)
}

// ListBoards retrieves all boards with their columns
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.GetAllBoards(ctx)
}

// DeleteBoard removes a board together with its columns and cards
func (s *service) DeleteBoard(ctx context.Context, boardID int) error {
	if boardID <= 0 {
		return ErrInvalidBoardID
	}

	if err := s.repo.DeleteBoard(ctx, boardID); err != nil {
		return err
	}

	s.logger.Info("board deleted", "board_id", boardID)
	return nil
}

// GetBoardDetail retrieves the board overview with card counts per column
func (s *service) GetBoardDetail(ctx context.Context, boardID int) (*models.BoardDetail, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetBoardDetail(ctx, boardID)
}

// GetColumnDetail retrieves a column of the board with its cards
func (s *service) GetColumnDetail(ctx context.Context, boardID, columnID int) (*models.ColumnDetail, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	var detail *models.ColumnDetail
	err := s.repo.WithinTx(ctx, func(store database.DataStore) error {
		column, err := store.GetColumnByID(ctx, columnID)
		if err != nil {
			return err
		}
		if column.BoardID != boardID {
			return fmt.Errorf("%w: column %d does not belong to board %d", models.ErrColumnNotFound, columnID, boardID)
		}

		cards, err := store.GetCardSummariesByColumn(ctx, columnID)
		if err != nil {
			return err
		}

		detail = &models.ColumnDetail{
			ID:    column.ID,
			Name:  column.Name,
			Kind:  column.Kind,
			Order: column.Order,
			Cards: cards,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// ColumnsInfo returns the ordering projection used by card transitions.
// An unknown board yields ErrBoardNotFound.
func (s *service) ColumnsInfo(ctx context.Context, boardID int) (models.BoardColumns, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}

	columns, err := s.repo.ListColumnsForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: board %d", models.ErrBoardNotFound, boardID)
	}

	return columns, nil
}

func buildBoard(req CreateBoardRequest) (*models.Board, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	board := &models.Board{Name: name}
	addColumn := func(columnName string, kind models.ColumnKind) error {
		columnName = strings.TrimSpace(columnName)
		if columnName == "" {
			return fmt.Errorf("%w (%s column)", ErrEmptyColumnName, kind)
		}
		if utf8.RuneCountInString(columnName) > MaxNameLength {
			return fmt.Errorf("%w (column %q)", ErrNameTooLong, columnName)
		}
		board.Columns = append(board.Columns, &models.Column{
			Name:  columnName,
			Kind:  kind,
			Order: len(board.Columns),
		})
		return nil
	}

	if err := addColumn(req.InitialColumn, models.ColumnKindInitial); err != nil {
		return nil, err
	}
	for _, pending := range req.PendingColumns {
		if err := addColumn(pending, models.ColumnKindPending); err != nil {
			return nil, err
		}
	}
	if err := addColumn(req.FinalColumn, models.ColumnKindFinal); err != nil {
		return nil, err
	}
	if err := addColumn(req.CancelColumn, models.ColumnKindCancel); err != nil {
		return nil, err
	}

	return board, nil
}
