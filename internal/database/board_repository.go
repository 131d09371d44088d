package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db      querier
	columns *ColumnRepo
}

// Create inserts the board and all of its columns, setting their IDs.
// Callers wanting atomicity run it inside WithinTx.
func (r *BoardRepo) Create(ctx context.Context, board *models.Board) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO boards (name) VALUES (?)`, board.Name)
	if err != nil {
		return fmt.Errorf("failed to insert board: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	board.ID = int(id)

	for _, column := range board.Columns {
		column.BoardID = board.ID
		if err := r.columns.create(ctx, column); err != nil {
			return err
		}
	}

	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM boards WHERE id = ?`, board.ID,
	).Scan(&board.CreatedAt)
}

// GetByID retrieves a board with its ordered columns
func (r *BoardRepo) GetByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name, &board.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: board %d", models.ErrBoardNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	board.Columns, err = r.columns.GetByBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	return board, nil
}

// GetAll retrieves every board with its ordered columns, ordered by ID
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.Board, error) {
	boards, err := r.listBoards(ctx)
	if err != nil {
		return nil, err
	}

	// Rows are closed by now; the single connection is free for the column queries
	for _, board := range boards {
		board.Columns, err = r.columns.GetByBoard(ctx, board.ID)
		if err != nil {
			return nil, err
		}
	}

	return boards, nil
}

func (r *BoardRepo) listBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM boards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Name, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return boards, nil
}

// Delete removes a board; columns, cards and card events cascade
func (r *BoardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: board %d", models.ErrBoardNotFound, id)
	}
	return nil
}

// GetDetail retrieves the board overview with card counts per column
func (r *BoardRepo) GetDetail(ctx context.Context, id int) (*models.BoardDetail, error) {
	detail := &models.BoardDetail{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM boards WHERE id = ?`, id,
	).Scan(&detail.ID, &detail.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: board %d", models.ErrBoardNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	detail.Columns, err = r.columns.GetSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	return detail, nil
}
