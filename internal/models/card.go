package models

import (
	"fmt"
	"strings"
	"time"
)

// CardEventKind distinguishes entries in a card's block history
type CardEventKind string

const (
	CardEventBlock   CardEventKind = "BLOCK"
	CardEventUnblock CardEventKind = "UNBLOCK"
)

// CardEvent is a timestamped, reasoned pause or resume of a card's progress
type CardEvent struct {
	ID        int // 0 until persisted
	Kind      CardEventKind
	Reason    string
	CreatedAt time.Time
}

// Card represents a single card on a kanban board.
// Transitions are methods on the card; the card service loads, mutates and
// saves it inside one transaction.
type Card struct {
	ID           int
	Title        string
	Description  string
	ColumnID     int
	Blocked      bool
	BlockReason  string // Non-empty iff Blocked
	BlocksAmount int    // Incremented on every block, never on unblock
	Events       []CardEvent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID returns the card ID (used by quiet output mode)
func (c *Card) GetID() int { return c.ID }

// MoveToNextColumn advances the card to the column after its current one.
// Returns the column the card moved into.
func (c *Card) MoveToNextColumn(columns BoardColumns) (BoardColumnInfo, error) {
	if c.Blocked {
		return BoardColumnInfo{}, fmt.Errorf("%w: card %d must be unblocked before it can move", ErrBlockedCard, c.ID)
	}

	current, err := c.currentColumn(columns)
	if err != nil {
		return BoardColumnInfo{}, err
	}
	if current.Kind.IsTerminal() {
		return BoardColumnInfo{}, fmt.Errorf("%w: card %d is in the %s column and cannot move", ErrTerminalColumn, c.ID, current.Kind)
	}

	next, err := columns.NextColumn(current.Order)
	if err != nil {
		return BoardColumnInfo{}, err
	}

	c.ColumnID = next.ID
	return next, nil
}

// Block pauses the card's progress and records the trimmed reason
func (c *Card) Block(reason string, columns BoardColumns, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: block reason cannot be empty", ErrValidation)
	}
	if c.Blocked {
		return fmt.Errorf("%w: card %d (reason: %s)", ErrAlreadyBlocked, c.ID, c.BlockReason)
	}

	current, err := c.currentColumn(columns)
	if err != nil {
		return err
	}
	if current.Kind.IsTerminal() {
		return fmt.Errorf("%w: card %d is in the %s column and cannot be blocked", ErrTerminalColumn, c.ID, current.Kind)
	}

	c.Blocked = true
	c.BlockReason = reason
	c.BlocksAmount++
	c.Events = append(c.Events, CardEvent{Kind: CardEventBlock, Reason: reason, CreatedAt: at})
	return nil
}

// Unblock resumes the card's progress and records the trimmed reason
func (c *Card) Unblock(reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: unblock reason cannot be empty", ErrValidation)
	}
	if !c.Blocked {
		return fmt.Errorf("%w: card %d", ErrNotBlocked, c.ID)
	}

	c.Blocked = false
	c.BlockReason = ""
	c.Events = append(c.Events, CardEvent{Kind: CardEventUnblock, Reason: reason, CreatedAt: at})
	return nil
}

// Cancel moves the card into the board's CANCEL column.
// The blocked flag and reason are left as they are.
func (c *Card) Cancel(cancelColumnID int, columns BoardColumns) error {
	current, err := c.currentColumn(columns)
	if err != nil {
		return err
	}
	if current.Kind.IsTerminal() {
		return fmt.Errorf("%w: card %d is in the %s column and cannot be cancelled", ErrTerminalColumn, c.ID, current.Kind)
	}

	target, ok := columns.Find(cancelColumnID)
	if !ok || target.Kind != ColumnKindCancel {
		return fmt.Errorf("%w: column %d is not the board's cancel column", ErrColumnNotFound, cancelColumnID)
	}

	c.ColumnID = target.ID
	return nil
}

// PendingEvents returns the events that have not been persisted yet
func (c *Card) PendingEvents() []*CardEvent {
	var pending []*CardEvent
	for i := range c.Events {
		if c.Events[i].ID == 0 {
			pending = append(pending, &c.Events[i])
		}
	}
	return pending
}

func (c *Card) currentColumn(columns BoardColumns) (BoardColumnInfo, error) {
	current, ok := columns.Find(c.ColumnID)
	if !ok {
		return BoardColumnInfo{}, fmt.Errorf("%w: card %d is in column %d which does not belong to this board",
			ErrColumnNotFound, c.ID, c.ColumnID)
	}
	return current, nil
}

// CardSummary is a DTO for listing the cards of a column
type CardSummary struct {
	ID          int
	Title       string
	Description string
	Blocked     bool
}

// GetID returns the card ID (used by quiet output mode)
func (s *CardSummary) GetID() int { return s.ID }

// CardDetail is a DTO for the full card view
type CardDetail struct {
	Card
	BoardID    int
	ColumnName string
	ColumnKind ColumnKind
}
