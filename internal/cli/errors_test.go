package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/quadro/internal/models"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		wantCode string
		wantExit int
	}{
		{fmt.Errorf("%w: card 3", models.ErrCardNotFound), "CARD_NOT_FOUND", ExitNotFound},
		{models.ErrBoardNotFound, "BOARD_NOT_FOUND", ExitNotFound},
		{models.ErrColumnNotFound, "COLUMN_NOT_FOUND", ExitNotFound},
		{cardservice.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{fmt.Errorf("%w: two INITIAL columns", models.ErrInvalidLayout), "INVALID_LAYOUT", ExitValidation},
		{models.ErrTerminalColumn, "TERMINAL_COLUMN", ExitState},
		{models.ErrBlockedCard, "CARD_BLOCKED", ExitState},
		{models.ErrAlreadyBlocked, "ALREADY_BLOCKED", ExitState},
		{models.ErrNotBlocked, "NOT_BLOCKED", ExitState},
		{errors.New("disk full"), "INTERNAL_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			code, exit := ErrorCode(tt.err)
			if code != tt.wantCode || exit != tt.wantExit {
				t.Errorf("ErrorCode(%v) = %s/%d, want %s/%d", tt.err, code, exit, tt.wantCode, tt.wantExit)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	cause := fmt.Errorf("%w: card 5", models.ErrAlreadyBlocked)

	var err error
	stdout, _ := capture(t, func() {
		err = HandleError(formatter, cause)
	})

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("HandleError() = %T, want *CommandError", err)
	}
	if cmdErr.Code != ExitState {
		t.Errorf("Code = %d, want %d", cmdErr.Code, ExitState)
	}
	if !errors.Is(err, models.ErrAlreadyBlocked) {
		t.Error("CommandError should unwrap to the original error")
	}
	if stdout == "" {
		t.Error("HandleError should report through the formatter")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(&CommandError{Code: ExitNotFound}); got != ExitNotFound {
		t.Errorf("ExitCode(CommandError) = %d", got)
	}
	if got := ExitCode(fmt.Errorf("wrapped: %w", &CommandError{Code: ExitUsage})); got != ExitUsage {
		t.Errorf("ExitCode(wrapped) = %d", got)
	}
	if got := ExitCode(errors.New("unknown flag")); got != ExitError {
		t.Errorf("ExitCode(plain) = %d", got)
	}
}
