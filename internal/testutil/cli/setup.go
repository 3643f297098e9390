package cli

import (
	"database/sql"
	"testing"

	"github.com/eustache/eustache/internal/app"
	"github.com/eustache/eustache/internal/selection"
	"github.com/eustache/eustache/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The selection lives in memory so tests never touch the user's state file.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	appInstance := app.New(db, app.WithSelectionMedium(selection.NewMemoryMedium()))
	return db, appInstance
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, title string) string {
	t.Helper()
	return testutil.CreateTestProject(t, db, title)
}

// CreateTestSequence wraps testutil.CreateTestSequence for CLI tests
func CreateTestSequence(t *testing.T, db *sql.DB, projectID string, number int, title string) string {
	t.Helper()
	return testutil.CreateTestSequence(t, db, projectID, number, title)
}

// SelectProject stores id as the current selection of testApp
func SelectProject(t *testing.T, testApp *app.App, id string) {
	t.Helper()
	if err := testApp.Selection.Set(id); err != nil {
		t.Fatalf("Failed to select project: %v", err)
	}
}
