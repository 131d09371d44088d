package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quadro/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// newTestBoard builds an unsaved Backlog/Doing/Done/Cancelled board
func newTestBoard(name string) *models.Board {
	return &models.Board{
		Name: name,
		Columns: []*models.Column{
			{Name: "Backlog", Kind: models.ColumnKindInitial, Order: 0},
			{Name: "Doing", Kind: models.ColumnKindPending, Order: 1},
			{Name: "Done", Kind: models.ColumnKindFinal, Order: 2},
			{Name: "Cancelled", Kind: models.ColumnKindCancel, Order: 3},
		},
	}
}

// createTestBoard persists a scenario board and returns it
func createTestBoard(t *testing.T, repo *Repository) *models.Board {
	t.Helper()
	board := newTestBoard("Test Board")
	if err := repo.CreateBoard(context.Background(), board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board
}

// createTestCard persists a card in the given column and returns it
func createTestCard(t *testing.T, repo *Repository, columnID int, title string) *models.Card {
	t.Helper()
	card := &models.Card{Title: title, Description: "Test Description", ColumnID: columnID}
	if err := repo.CreateCard(context.Background(), card); err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	return card
}

// countRows returns the number of rows in a table
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
