package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db querier
}

// create inserts a column for an existing board and sets its ID
func (r *ColumnRepo) create(ctx context.Context, column *models.Column) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO board_columns (board_id, name, kind, position) VALUES (?, ?, ?, ?)`,
		column.BoardID, column.Name, string(column.Kind), column.Order,
	)
	if err != nil {
		return fmt.Errorf("failed to insert column %q: %w", column.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	column.ID = int(id)
	return nil
}

// GetByBoard retrieves all columns of a board ordered by position
func (r *ColumnRepo) GetByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, kind, position
		 FROM board_columns
		 WHERE board_id = ?
		 ORDER BY position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		column, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return columns, nil
}

// GetByID retrieves a single column
func (r *ColumnRepo) GetByID(ctx context.Context, id int) (*models.Column, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name, kind, position FROM board_columns WHERE id = ?`, id)

	column, err := scanColumn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: column %d", models.ErrColumnNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return column, nil
}

// ListInfo returns the ordering projection of a board's columns
func (r *ColumnRepo) ListInfo(ctx context.Context, boardID int) (models.BoardColumns, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, kind FROM board_columns WHERE board_id = ? ORDER BY position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := models.BoardColumns{}
	for rows.Next() {
		var info models.BoardColumnInfo
		var kind string
		if err := rows.Scan(&info.ID, &info.Order, &kind); err != nil {
			return nil, err
		}
		info.Kind = models.ColumnKind(kind)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return infos, nil
}

// GetSummaries returns every column of a board with the number of cards in it
func (r *ColumnRepo) GetSummaries(ctx context.Context, boardID int) ([]*models.ColumnSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.kind, c.position, COUNT(k.id)
		 FROM board_columns c
		 LEFT JOIN cards k ON k.board_column_id = c.id
		 WHERE c.board_id = ?
		 GROUP BY c.id, c.name, c.kind, c.position
		 ORDER BY c.position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.ColumnSummary
	for rows.Next() {
		summary := &models.ColumnSummary{}
		var kind string
		if err := rows.Scan(&summary.ID, &summary.Name, &kind, &summary.Order, &summary.CardsAmount); err != nil {
			return nil, err
		}
		summary.Kind = models.ColumnKind(kind)
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanColumn(row rowScanner) (*models.Column, error) {
	column := &models.Column{}
	var kind string
	if err := row.Scan(&column.ID, &column.BoardID, &column.Name, &kind, &column.Order); err != nil {
		return nil, err
	}
	column.Kind = models.ColumnKind(kind)
	return column, nil
}
