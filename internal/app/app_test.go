package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/quadro/internal/services/board"
	"github.com/thenoetrevino/quadro/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}

	if app.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}

	if app.CardService == nil {
		t.Error("Expected CardService to be initialized")
	}

	if app.Repo() == nil {
		t.Error("Expected repository to be initialized")
	}

	if app.Logger != slog.Default() {
		t.Error("Expected default logger when no option is given")
	}
}

// TestNew_ServicesShareDatabase tests that a board created through one service
// is visible to the other
func TestNew_ServicesShareDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := New(db)
	ctx := context.Background()

	created, err := app.BoardService.CreateBoard(ctx, board.CreateBoardRequest{
		Name:          "Shared",
		InitialColumn: "Todo",
		FinalColumn:   "Done",
		CancelColumn:  "Dropped",
	})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	columns, err := app.Repo().ListColumnsForBoard(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to list columns: %v", err)
	}
	if len(columns) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(columns))
	}
}

func TestWithLogger(t *testing.T) {
	db := testutil.SetupTestDB(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := New(db, WithLogger(logger))
	app.Logger.Info("hello")

	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("Expected custom logger to receive output, got %q", buf.String())
	}

	if _, err := app.BoardService.CreateBoard(context.Background(), board.CreateBoardRequest{
		Name:          "Logged",
		InitialColumn: "Todo",
		FinalColumn:   "Done",
		CancelColumn:  "Dropped",
	}); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("board created")) {
		t.Errorf("Expected services to log through the custom logger, got %q", buf.String())
	}

	if New(db, WithLogger(nil)).Logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(db)

	err := app.Close()
	if err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
