package models

import (
	"fmt"
	"strings"
)

// ColumnKind is the role a column plays in a card's traversal
type ColumnKind string

const (
	ColumnKindInitial ColumnKind = "INITIAL"
	ColumnKindPending ColumnKind = "PENDING"
	ColumnKindFinal   ColumnKind = "FINAL"
	ColumnKindCancel  ColumnKind = "CANCEL"
)

// ParseColumnKind maps a kind string (case-insensitive) to its ColumnKind
func ParseColumnKind(s string) (ColumnKind, error) {
	kind := ColumnKind(strings.ToUpper(strings.TrimSpace(s)))
	switch kind {
	case ColumnKindInitial, ColumnKindPending, ColumnKindFinal, ColumnKindCancel:
		return kind, nil
	}
	return "", fmt.Errorf("%w: unknown column kind %q", ErrValidation, s)
}

// IsTerminal reports whether no forward movement is possible from this kind
func (k ColumnKind) IsTerminal() bool {
	return k == ColumnKindFinal || k == ColumnKindCancel
}

// Column represents a kanban board column (e.g., "Backlog", "Doing", "Done")
type Column struct {
	ID      int        // Unique identifier for the column
	BoardID int        // Board the column belongs to
	Name    string     // Display name of the column
	Kind    ColumnKind // Role of the column in the traversal
	Order   int        // Position within the board, unique per board
}

// Info returns the lightweight ordering projection of the column
func (c *Column) Info() BoardColumnInfo {
	return BoardColumnInfo{ID: c.ID, Order: c.Order, Kind: c.Kind}
}

// ColumnSummary is a DTO for the board overview
type ColumnSummary struct {
	ID          int
	Name        string
	Kind        ColumnKind
	Order       int
	CardsAmount int
}

// ColumnDetail is a DTO for displaying a column together with its cards
type ColumnDetail struct {
	ID    int
	Name  string
	Kind  ColumnKind
	Order int
	Cards []*CardSummary
}
