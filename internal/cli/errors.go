package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/models"
)

// CommandError carries the process exit status for a failed command.
// The message has already been written by the OutputFormatter.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status for err: 0 for nil, the carried code for
// a CommandError and ExitError for anything else
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

type errorMapping struct {
	target     error
	code       string
	exit       int
	suggestion string
}

// Most specific first: service errors wrap model sentinels
var errorMappings = []errorMapping{
	{models.ErrCardNotFound, "CARD_NOT_FOUND", ExitNotFound, "Use 'quadro board show' to see the cards of a board"},
	{models.ErrBoardNotFound, "BOARD_NOT_FOUND", ExitNotFound, "Use 'quadro board list' to see available boards"},
	{models.ErrColumnNotFound, "COLUMN_NOT_FOUND", ExitNotFound, "Check that the card belongs to the selected board"},
	{models.ErrInvalidLayout, "INVALID_LAYOUT", ExitValidation, ""},
	{models.ErrValidation, "VALIDATION_ERROR", ExitValidation, ""},
	{models.ErrTerminalColumn, "TERMINAL_COLUMN", ExitState, "Cards in FINAL or CANCEL columns cannot change"},
	{models.ErrBlockedCard, "CARD_BLOCKED", ExitState, "Unblock the card first with 'quadro card unblock'"},
	{models.ErrAlreadyBlocked, "ALREADY_BLOCKED", ExitState, ""},
	{models.ErrNotBlocked, "NOT_BLOCKED", ExitState, ""},
}

// ErrorCode returns the machine-readable code and exit status for err
func ErrorCode(err error) (string, int) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.code, m.exit
		}
	}
	return "INTERNAL_ERROR", ExitError
}

// HandleError reports err through the formatter and returns the CommandError
// the command should return
func HandleError(formatter *OutputFormatter, err error) error {
	code, exit := ErrorCode(err)

	suggestion := ""
	for _, m := range errorMappings {
		if m.code == code {
			suggestion = m.suggestion
			break
		}
	}

	if exit == ExitError {
		slog.Error("command failed", "error", err)
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}

	return &CommandError{Code: exit, Err: err}
}

// UsageError reports a usage problem and returns an ExitUsage CommandError
func UsageError(formatter *OutputFormatter, code, message, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: ExitUsage, Err: errors.New(message)}
}
