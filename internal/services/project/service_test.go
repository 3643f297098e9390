package project

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T, publisher events.Publisher) (Service, *database.Repository) {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := database.NewRepository(db)
	return NewService(repo, publisher), repo
}

// recordingPublisher records published signals
type recordingPublisher struct {
	signals []events.Signal
}

func (r *recordingPublisher) Publish(sig events.Signal) int {
	r.signals = append(r.signals, sig)
	return 0
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateProject(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	svc, _ := setupService(t, pub)

	result, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		Title:       "  Cléo de 5 à 7 ",
		Description: "Deux heures de la vie de Cléo",
		Director:    "Agnès Varda",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Title != "Cléo de 5 à 7" {
		t.Errorf("Expected trimmed title, got '%s'", result.Title)
	}
	if result.Status != models.StatusPreparation {
		t.Errorf("Expected default status '%s', got '%s'", models.StatusPreparation, result.Status)
	}
	if _, err := uuid.Parse(result.ID); err != nil {
		t.Errorf("Expected uuid project ID, got '%s'", result.ID)
	}

	if len(pub.signals) != 1 || pub.signals[0].Name != events.SignalDataChanged {
		t.Fatalf("Expected one data-changed signal, got %+v", pub.signals)
	}
	if pub.signals[0].ProjectID != result.ID {
		t.Errorf("Expected signal for project %s, got %s", result.ID, pub.signals[0].ProjectID)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t, nil)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	tests := []struct {
		name string
		req  CreateProjectRequest
		want error
	}{
		{"empty title", CreateProjectRequest{Title: "   "}, ErrEmptyTitle},
		{"title too long", CreateProjectRequest{Title: strings.Repeat("a", 201)}, ErrTitleTooLong},
		{"bad status", CreateProjectRequest{Title: "ok", Status: "Livré"}, ErrInvalidStatus},
		{"end before start", CreateProjectRequest{Title: "ok", StartDate: &start, EndDate: &end}, ErrInvalidDateWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(context.Background(), tt.req)
			if err != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t, nil)

	_, err := svc.GetProjectByID(context.Background(), uuid.NewString())
	if err != ErrProjectNotFound {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}

	_, err = svc.GetProjectByID(context.Background(), "")
	if err != ErrInvalidProjectID {
		t.Errorf("Expected ErrInvalidProjectID, got %v", err)
	}
}

func TestUpdateProject_PartialFields(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	svc, _ := setupService(t, pub)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, CreateProjectRequest{Title: "Titre", Description: "Desc"})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	status := models.StatusInProgress
	producer := "Ciné-Tamaris"
	updated, err := svc.UpdateProject(ctx, UpdateProjectRequest{
		ID:       created.ID,
		Status:   &status,
		Producer: &producer,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Titre" || updated.Description != "Desc" {
		t.Errorf("Expected untouched fields to be kept, got %+v", updated)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("Expected status '%s', got '%s'", models.StatusInProgress, updated.Status)
	}

	fetched, err := svc.GetProjectByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to fetch project: %v", err)
	}
	if fetched.Producer != producer {
		t.Errorf("Expected producer '%s', got '%s'", producer, fetched.Producer)
	}

	if len(pub.signals) != 2 {
		t.Errorf("Expected 2 signals (create + update), got %d", len(pub.signals))
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t, nil)
	title := "x"

	_, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: uuid.NewString(), Title: &title})
	if err != ErrProjectNotFound {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, CreateProjectRequest{Title: "À supprimer"})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if err := svc.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.DeleteProject(ctx, created.ID); err != ErrProjectNotFound {
		t.Errorf("Expected ErrProjectNotFound on second delete, got %v", err)
	}
}

func TestGetSequenceCount(t *testing.T) {
	t.Parallel()

	svc, repo := setupService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, CreateProjectRequest{Title: "Compté"})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	for i := 1; i <= 3; i++ {
		seq := &models.Sequence{ID: uuid.NewString(), ProjectID: created.ID, Number: i, Title: "S"}
		if err := repo.CreateSequence(ctx, seq); err != nil {
			t.Fatalf("Failed to create sequence: %v", err)
		}
	}

	count, err := svc.GetSequenceCount(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 sequences, got %d", count)
	}
}
