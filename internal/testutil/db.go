package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// A second connection would open a second, empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// CreateTestBoard creates a board with Backlog (INITIAL), Doing (PENDING),
// Done (FINAL) and Cancelled (CANCEL) columns at orders 0..3
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()

	board := &models.Board{
		Name: name,
		Columns: []*models.Column{
			{Name: "Backlog", Kind: models.ColumnKindInitial, Order: 0},
			{Name: "Doing", Kind: models.ColumnKindPending, Order: 1},
			{Name: "Done", Kind: models.ColumnKindFinal, Order: 2},
			{Name: "Cancelled", Kind: models.ColumnKindCancel, Order: 3},
		},
	}
	if err := database.NewRepository(db).CreateBoard(context.Background(), board); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}

	return board
}

// CreateTestCard creates a card in the given column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()

	card := &models.Card{Title: title, Description: "Test description", ColumnID: columnID}
	if err := database.NewRepository(db).CreateCard(context.Background(), card); err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}

	return card.ID
}

// CardColumnID returns the column a card currently sits in
func CardColumnID(t *testing.T, db *sql.DB, cardID int) int {
	t.Helper()

	var columnID int
	err := db.QueryRowContext(context.Background(),
		"SELECT board_column_id FROM cards WHERE id = ?", cardID,
	).Scan(&columnID)
	if err != nil {
		t.Fatalf("Failed to get card column: %v", err)
	}

	return columnID
}
