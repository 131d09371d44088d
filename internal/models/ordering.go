package models

import (
	"fmt"
	"sort"
)

// BoardColumnInfo is a read-only projection of a column used to reason about
// ordering without loading the full Column or its board.
type BoardColumnInfo struct {
	ID    int
	Order int
	Kind  ColumnKind
}

// BoardColumns is the ordering model of one board.
// INITIAL, PENDING and FINAL columns form a contiguous sequence starting at 0.
// The CANCEL column is a side exit and never part of that sequence.
type BoardColumns []BoardColumnInfo

// Find returns the column with the given ID
func (bc BoardColumns) Find(columnID int) (BoardColumnInfo, bool) {
	for _, c := range bc {
		if c.ID == columnID {
			return c, true
		}
	}
	return BoardColumnInfo{}, false
}

// NextColumn returns the non-CANCEL column whose order is currentOrder+1
func (bc BoardColumns) NextColumn(currentOrder int) (BoardColumnInfo, error) {
	for _, c := range bc {
		if c.Kind != ColumnKindCancel && c.Order == currentOrder+1 {
			return c, nil
		}
	}
	return BoardColumnInfo{}, fmt.Errorf("%w: no column after order %d", ErrColumnNotFound, currentOrder)
}

// IsFinal reports whether the column is the board's FINAL column
func (bc BoardColumns) IsFinal(columnID int) bool {
	c, ok := bc.Find(columnID)
	return ok && c.Kind == ColumnKindFinal
}

// InitialColumn returns the single INITIAL column
func (bc BoardColumns) InitialColumn() (BoardColumnInfo, error) {
	return bc.single(ColumnKindInitial)
}

// CancelColumn returns the single CANCEL column
func (bc BoardColumns) CancelColumn() (BoardColumnInfo, error) {
	return bc.single(ColumnKindCancel)
}

func (bc BoardColumns) single(kind ColumnKind) (BoardColumnInfo, error) {
	for _, c := range bc {
		if c.Kind == kind {
			return c, nil
		}
	}
	return BoardColumnInfo{}, fmt.Errorf("%w: board has no %s column", ErrColumnNotFound, kind)
}

// Validate checks the board layout: one INITIAL at order 0, PENDING columns
// after it, one FINAL holding the highest traversal order, one CANCEL, and
// traversal orders contiguous from 0. Orders and assigned (non-zero) IDs
// must be unique.
func (bc BoardColumns) Validate() error {
	counts := make(map[ColumnKind]int)
	ids := make(map[int]bool)
	orders := make(map[int]bool)
	var traversal BoardColumns

	for _, c := range bc {
		switch c.Kind {
		case ColumnKindInitial, ColumnKindPending, ColumnKindFinal, ColumnKindCancel:
		default:
			return fmt.Errorf("%w: column %d has unknown kind %q", ErrInvalidLayout, c.ID, c.Kind)
		}
		counts[c.Kind]++
		if c.ID != 0 && ids[c.ID] {
			return fmt.Errorf("%w: duplicate column id %d", ErrInvalidLayout, c.ID)
		}
		ids[c.ID] = true
		if orders[c.Order] {
			return fmt.Errorf("%w: duplicate column order %d", ErrInvalidLayout, c.Order)
		}
		orders[c.Order] = true
		if c.Kind != ColumnKindCancel {
			traversal = append(traversal, c)
		}
	}

	for _, kind := range []ColumnKind{ColumnKindInitial, ColumnKindFinal, ColumnKindCancel} {
		if counts[kind] != 1 {
			return fmt.Errorf("%w: expected exactly one %s column, found %d", ErrInvalidLayout, kind, counts[kind])
		}
	}

	sort.Slice(traversal, func(i, j int) bool { return traversal[i].Order < traversal[j].Order })
	last := len(traversal) - 1
	for i, c := range traversal {
		if c.Order != i {
			return fmt.Errorf("%w: column orders must be contiguous from 0, got %d at position %d", ErrInvalidLayout, c.Order, i)
		}
		switch {
		case i == 0 && c.Kind != ColumnKindInitial:
			return fmt.Errorf("%w: order 0 must be the INITIAL column", ErrInvalidLayout)
		case i == last && c.Kind != ColumnKindFinal:
			return fmt.Errorf("%w: the highest order must be the FINAL column", ErrInvalidLayout)
		case i > 0 && i < last && c.Kind != ColumnKindPending:
			return fmt.Errorf("%w: column at order %d must be PENDING", ErrInvalidLayout, i)
		}
	}

	return nil
}
