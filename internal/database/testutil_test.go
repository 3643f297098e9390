package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) (*sql.DB, *Repository) {
	t.Helper()
	db, err := OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, NewRepository(db)
}

func createTestProject(t *testing.T, repo *Repository, title string) *models.Project {
	t.Helper()
	p := &models.Project{ID: uuid.NewString(), Title: title, Status: models.StatusPreparation}
	if err := repo.CreateProject(context.Background(), p); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return p
}

func createTestSequence(t *testing.T, repo *Repository, projectID string, number int) *models.Sequence {
	t.Helper()
	s := &models.Sequence{ID: uuid.NewString(), ProjectID: projectID, Number: number, Title: "Séquence"}
	if err := repo.CreateSequence(context.Background(), s); err != nil {
		t.Fatalf("Failed to create sequence: %v", err)
	}
	return s
}
