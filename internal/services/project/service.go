package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
)

const maxTitleLength = 200

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetSequenceCount(ctx context.Context, projectID string) (int, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Title       string
	Description string
	Director    string
	Producer    string
	Status      models.Status // Optional: "" means En préparation
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateProjectRequest encapsulates data for updating a project.
// Fields with pointers are optional - nil means don't update
type UpdateProjectRequest struct {
	ID          string
	Title       *string
	Description *string
	Director    *string
	Producer    *string
	Status      *models.Status
	StartDate   *time.Time
	EndDate     *time.Time
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	CreateProject(ctx context.Context, p *models.Project) error
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id string) error
	CountSequencesByProject(ctx context.Context, projectID string) (int, error)
}

// service implements Service interface with private repository
type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new project service with private repository
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidProjectID
	}
	project, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return project, nil
}

// GetSequenceCount returns the number of sequences in a project
func (s *service) GetSequenceCount(ctx context.Context, projectID string) (int, error) {
	if strings.TrimSpace(projectID) == "" {
		return 0, ErrInvalidProjectID
	}
	return s.repo.CountSequencesByProject(ctx, projectID)
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusPreparation
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Director:    req.Director,
		Producer:    req.Producer,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(project.ID))

	return project, nil
}

// UpdateProject applies the provided fields to an existing project
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidProjectID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	// Get existing project to fill in missing fields
	project, err := s.repo.GetProjectByID(ctx, req.ID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Director != nil {
		project.Director = *req.Director
	}
	if req.Producer != nil {
		project.Producer = *req.Producer
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if err := validateDates(project.StartDate, project.EndDate); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", mapNotFound(err))
	}

	events.Publish(s.publisher, events.DataChanged(project.ID))

	return project, nil
}

// DeleteProject deletes a project and everything attached to it
func (s *service) DeleteProject(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidProjectID
	}

	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return mapNotFound(err)
	}

	events.Publish(s.publisher, events.DataChanged(id))

	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if len([]rune(trimmed)) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDateWindow
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}
