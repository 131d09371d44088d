package models

import "time"

// Board represents a kanban board and its ordered columns
type Board struct {
	ID        int
	Name      string
	Columns   []*Column // Ordered by Column.Order
	CreatedAt time.Time
}

// GetID returns the board ID (used by quiet output mode)
func (b *Board) GetID() int { return b.ID }

// ColumnsInfo returns the ordering projection of the board's columns
func (b *Board) ColumnsInfo() BoardColumns {
	infos := make(BoardColumns, 0, len(b.Columns))
	for _, c := range b.Columns {
		infos = append(infos, c.Info())
	}
	return infos
}

// BoardDetail is a DTO for the board overview with card counts per column
type BoardDetail struct {
	ID      int
	Name    string
	Columns []*ColumnSummary
}

// GetID returns the board ID (used by quiet output mode)
func (d *BoardDetail) GetID() int { return d.ID }
