package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Service defines all card-related business operations.
// Mutations take the board's column projection explicitly and run
// read-validate-write inside a single transaction.
type Service interface {
	// Read operations
	GetCard(ctx context.Context, cardID int) (*models.Card, error)
	GetCardDetail(ctx context.Context, cardID int) (*models.CardDetail, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)

	// Lifecycle transitions
	MoveToNextColumn(ctx context.Context, cardID int, columns models.BoardColumns) (*models.Card, error)
	Block(ctx context.Context, cardID int, reason string, columns models.BoardColumns) (*models.Card, error)
	Unblock(ctx context.Context, cardID int, reason string) (*models.Card, error)
	Cancel(ctx context.Context, cardID, cancelColumnID int, columns models.BoardColumns) (*models.Card, error)
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	Title       string
	Description string
	ColumnID    int // The board's INITIAL column
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new card service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetCard retrieves a card with its block history
func (s *service) GetCard(ctx context.Context, cardID int) (*models.Card, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	return s.repo.FindCardByID(ctx, cardID)
}

// GetCardDetail retrieves a card with its column and board
func (s *service) GetCardDetail(ctx context.Context, cardID int) (*models.CardDetail, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	return s.repo.GetCardDetail(ctx, cardID)
}

// CreateCard places a new, unblocked card in the board's INITIAL column
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if err := validateCreateCard(req); err != nil {
		return nil, err
	}

	card := &models.Card{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ColumnID:    req.ColumnID,
	}

	err := s.repo.WithinTx(ctx, func(store database.DataStore) error {
		column, err := store.GetColumnByID(ctx, req.ColumnID)
		if err != nil {
			return err
		}
		if column.Kind != models.ColumnKindInitial {
			return fmt.Errorf("%w (column %q is %s)", ErrNotInitialColumn, column.Name, column.Kind)
		}

		if err := store.CreateCard(ctx, card); err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created", "card_id", card.ID, "column_id", card.ColumnID)
	return card, nil
}

// MoveToNextColumn advances the card one column along the board
func (s *service) MoveToNextColumn(ctx context.Context, cardID int, columns models.BoardColumns) (*models.Card, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	if len(columns) == 0 {
		return nil, ErrMissingColumnsInfo
	}

	var from int
	card, err := s.transition(ctx, cardID, func(card *models.Card) error {
		from = card.ColumnID
		_, err := card.MoveToNextColumn(columns)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card moved", "card_id", card.ID, "from_column_id", from, "to_column_id", card.ColumnID)
	return card, nil
}

// Block pauses the card and records the reason in its history
func (s *service) Block(ctx context.Context, cardID int, reason string, columns models.BoardColumns) (*models.Card, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	if len(columns) == 0 {
		return nil, ErrMissingColumnsInfo
	}

	card, err := s.transition(ctx, cardID, func(card *models.Card) error {
		return card.Block(reason, columns, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card blocked", "card_id", card.ID, "blocks_amount", card.BlocksAmount)
	return card, nil
}

// Unblock resumes the card and records the reason in its history
func (s *service) Unblock(ctx context.Context, cardID int, reason string) (*models.Card, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	card, err := s.transition(ctx, cardID, func(card *models.Card) error {
		return card.Unblock(reason, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card unblocked", "card_id", card.ID)
	return card, nil
}

// Cancel moves the card into the board's CANCEL column
func (s *service) Cancel(ctx context.Context, cardID, cancelColumnID int, columns models.BoardColumns) (*models.Card, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}
	if cancelColumnID <= 0 {
		return nil, ErrInvalidColumnID
	}
	if len(columns) == 0 {
		return nil, ErrMissingColumnsInfo
	}

	card, err := s.transition(ctx, cardID, func(card *models.Card) error {
		return card.Cancel(cancelColumnID, columns)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card cancelled", "card_id", card.ID, "column_id", card.ColumnID)
	return card, nil
}

// transition loads the card, applies fn and saves the result in one transaction.
// Nothing is written when fn fails.
func (s *service) transition(ctx context.Context, cardID int, fn func(*models.Card) error) (*models.Card, error) {
	var card *models.Card
	err := s.repo.WithinTx(ctx, func(store database.DataStore) error {
		loaded, err := store.FindCardByID(ctx, cardID)
		if err != nil {
			return err
		}
		if err := fn(loaded); err != nil {
			return err
		}
		if err := store.SaveCard(ctx, loaded); err != nil {
			return fmt.Errorf("failed to save card %d: %w", cardID, err)
		}
		card = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func validateCreateCard(req CreateCardRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrEmptyDescription
	}
	if req.ColumnID <= 0 {
		return ErrInvalidColumnID
	}
	return nil
}
