package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quadro/internal/app"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	t.Setenv("QUADRO_BOARD", "")

	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
// Creates a board with Backlog, Doing, Done and Cancelled columns
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	return testutil.CreateTestBoard(t, db, name)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
// Creates a card and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()
	return testutil.CreateTestCard(t, db, columnID, title)
}
