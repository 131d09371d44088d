package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db querier
}

// Create inserts a new card and sets its ID and timestamps
func (r *CardRepo) Create(ctx context.Context, card *models.Card) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (title, description, board_column_id, blocked, block_reason, blocks_amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		card.Title, card.Description, card.ColumnID, card.Blocked, nullIfEmpty(card.BlockReason), card.BlocksAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	card.ID = int(id)

	if err := r.insertEvents(ctx, card); err != nil {
		return err
	}

	// Retrieve the created card to get timestamps
	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM cards WHERE id = ?`, card.ID,
	).Scan(&card.CreatedAt, &card.UpdatedAt)
}

// FindByID retrieves a card with its full event log
func (r *CardRepo) FindByID(ctx context.Context, id int) (*models.Card, error) {
	card := &models.Card{}
	var blockReason sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, board_column_id, blocked, block_reason, blocks_amount, created_at, updated_at
		 FROM cards WHERE id = ?`,
		id,
	).Scan(
		&card.ID, &card.Title, &card.Description, &card.ColumnID,
		&card.Blocked, &blockReason, &card.BlocksAmount, &card.CreatedAt, &card.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: card %d", models.ErrCardNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	card.BlockReason = NullStringToString(blockReason)

	card.Events, err = r.getEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	return card, nil
}

// Save writes the card's state and appends its unsaved events.
// A card without an ID is created instead.
func (r *CardRepo) Save(ctx context.Context, card *models.Card) error {
	if card.ID == 0 {
		return r.Create(ctx, card)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, board_column_id = ?, blocked = ?, block_reason = ?,
		     blocks_amount = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		card.Title, card.Description, card.ColumnID, card.Blocked, nullIfEmpty(card.BlockReason),
		card.BlocksAmount, card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: card %d", models.ErrCardNotFound, card.ID)
	}

	if err := r.insertEvents(ctx, card); err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT updated_at FROM cards WHERE id = ?`, card.ID,
	).Scan(&card.UpdatedAt)
}

// GetDetail retrieves a card together with its column and board
func (r *CardRepo) GetDetail(ctx context.Context, id int) (*models.CardDetail, error) {
	detail := &models.CardDetail{}
	var blockReason sql.NullString
	var kind string
	err := r.db.QueryRowContext(ctx,
		`SELECT k.id, k.title, k.description, k.board_column_id, k.blocked, k.block_reason,
		        k.blocks_amount, k.created_at, k.updated_at, c.board_id, c.name, c.kind
		 FROM cards k
		 INNER JOIN board_columns c ON c.id = k.board_column_id
		 WHERE k.id = ?`,
		id,
	).Scan(
		&detail.ID, &detail.Title, &detail.Description, &detail.ColumnID, &detail.Blocked,
		&blockReason, &detail.BlocksAmount, &detail.CreatedAt, &detail.UpdatedAt,
		&detail.BoardID, &detail.ColumnName, &kind,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: card %d", models.ErrCardNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	detail.BlockReason = NullStringToString(blockReason)
	detail.ColumnKind = models.ColumnKind(kind)

	detail.Events, err = r.getEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// GetSummariesByColumn lists the cards of a column ordered by ID
func (r *CardRepo) GetSummariesByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, blocked FROM cards WHERE board_column_id = ? ORDER BY id`,
		columnID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.CardSummary
	for rows.Next() {
		card := &models.CardSummary{}
		if err := rows.Scan(&card.ID, &card.Title, &card.Description, &card.Blocked); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *CardRepo) getEvents(ctx context.Context, cardID int) ([]models.CardEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, reason, created_at FROM card_events WHERE card_id = ? ORDER BY id`,
		cardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CardEvent
	for rows.Next() {
		var event models.CardEvent
		var kind string
		if err := rows.Scan(&event.ID, &kind, &event.Reason, &event.CreatedAt); err != nil {
			return nil, err
		}
		event.Kind = models.CardEventKind(kind)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *CardRepo) insertEvents(ctx context.Context, card *models.Card) error {
	for _, event := range card.PendingEvents() {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO card_events (card_id, kind, reason, created_at) VALUES (?, ?, ?, ?)`,
			card.ID, string(event.Kind), event.Reason, event.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to append %s event to card %d: %w", event.Kind, card.ID, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		event.ID = int(id)
	}
	return nil
}
