package database

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"
)

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}

	if n := countRows(t, db, migrationTable); n != 2 {
		t.Errorf("Expected 2 recorded migrations, got %d", n)
	}
}

func TestRunMigrations_OnlyUpSection(t *testing.T) {
	t.Parallel()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	fsys := fstest.MapFS{
		"0001_widgets.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE widgets (id INTEGER);\n-- +migrate Down\nDROP TABLE widgets;\n")},
		"README.md":        {Data: []byte("not a migration")},
	}

	if err := runMigrations(context.Background(), db, fsys); err != nil {
		t.Fatalf("runMigrations failed: %v", err)
	}

	if n := countRows(t, db, "widgets"); n != 0 {
		t.Errorf("Expected empty widgets table, got %d rows", n)
	}
	if n := countRows(t, db, migrationTable); n != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", n)
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "SELECT 1;", "SELECT 1;"},
		{"up only", "-- +migrate Up\nSELECT 1;", "\nSELECT 1;"},
		{"up and down", "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", "\nSELECT 1;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := upSection(tt.content); got != tt.want {
				t.Errorf("upSection() = %q, want %q", got, tt.want)
			}
		})
	}
}
