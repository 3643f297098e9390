package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/eustache/eustache/internal/database"
	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries an *app.App into commands under test
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestProject inserts a project and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, title string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO projects (id, title, status, created_at, updated_at)
		 VALUES (?, ?, 'En préparation', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		id, title)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return id
}

// CreateTestSequence inserts a sequence and returns its ID
func CreateTestSequence(t *testing.T, db *sql.DB, projectID string, number int, title string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO sequences (id, project_id, number, title, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		id, projectID, number, title)
	if err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}
	return id
}

// CountRows returns the number of rows of table matching where (may be "")
func CountRows(t *testing.T, db *sql.DB, table, where string, args ...any) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	if err := db.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
