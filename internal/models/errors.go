package models

import "errors"

// Card lifecycle errors. Services wrap these with context, so callers
// should match with errors.Is.
var (
	// ErrValidation indicates a required field was empty or malformed
	ErrValidation = errors.New("validation failed")

	// ErrBoardNotFound indicates no board exists with the requested ID
	ErrBoardNotFound = errors.New("board not found")

	// ErrCardNotFound indicates no card exists with the requested ID
	ErrCardNotFound = errors.New("card not found")

	// ErrColumnNotFound indicates the column is missing from the board's ordering
	ErrColumnNotFound = errors.New("column not found")

	// ErrTerminalColumn indicates the card is in a FINAL or CANCEL column
	ErrTerminalColumn = errors.New("card is in a terminal column")

	// ErrBlockedCard indicates the card must be unblocked before it can move
	ErrBlockedCard = errors.New("card is blocked")

	// ErrAlreadyBlocked indicates a block was requested for a blocked card
	ErrAlreadyBlocked = errors.New("card is already blocked")

	// ErrNotBlocked indicates an unblock was requested for a card that is not blocked
	ErrNotBlocked = errors.New("card is not blocked")

	// ErrInvalidLayout indicates a board's columns break the ordering rules
	ErrInvalidLayout = errors.New("invalid board column layout")
)
