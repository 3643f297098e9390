package sequence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
)

// Service defines sequence operations
type Service interface {
	ListSequences(ctx context.Context, projectID string) ([]*models.Sequence, error)
	GetSequence(ctx context.Context, id string) (*models.Sequence, error)
	CreateSequence(ctx context.Context, req CreateSequenceRequest) (*models.Sequence, error)
	UpdateSequence(ctx context.Context, req UpdateSequenceRequest) (*models.Sequence, error)
	DeleteSequence(ctx context.Context, id string) error
}

// CreateSequenceRequest encapsulates data for creating a sequence
type CreateSequenceRequest struct {
	ProjectID string
	Number    int // Optional: 0 means next free number
	Title     string
	Summary   string
}

// UpdateSequenceRequest encapsulates data for updating a sequence
type UpdateSequenceRequest struct {
	ID      string
	Number  *int
	Title   *string
	Summary *string
}

type repository interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	CreateSequence(ctx context.Context, s *models.Sequence) error
	GetSequenceByID(ctx context.Context, id string) (*models.Sequence, error)
	GetSequencesByProject(ctx context.Context, projectID string) ([]*models.Sequence, error)
	NextSequenceNumber(ctx context.Context, projectID string) (int, error)
	UpdateSequence(ctx context.Context, s *models.Sequence) error
	DeleteSequence(ctx context.Context, id string) error
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new sequence service
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// ListSequences lists the sequences of a project in script order
func (s *service) ListSequences(ctx context.Context, projectID string) ([]*models.Sequence, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrNoProject
	}
	return s.repo.GetSequencesByProject(ctx, projectID)
}

// GetSequence retrieves one sequence
func (s *service) GetSequence(ctx context.Context, id string) (*models.Sequence, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidSequenceID
	}
	seq, err := s.repo.GetSequenceByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrSequenceNotFound)
	}
	return seq, nil
}

// CreateSequence validates and inserts a sequence, numbering it when asked
func (s *service) CreateSequence(ctx context.Context, req CreateSequenceRequest) (*models.Sequence, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrNoProject
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.Number < 0 {
		return nil, ErrInvalidNumber
	}

	if _, err := s.repo.GetProjectByID(ctx, req.ProjectID); err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}

	number := req.Number
	if number == 0 {
		next, err := s.repo.NextSequenceNumber(ctx, req.ProjectID)
		if err != nil {
			return nil, err
		}
		number = next
	}

	seq := &models.Sequence{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Number:    number,
		Title:     strings.TrimSpace(req.Title),
		Summary:   req.Summary,
	}
	if err := s.repo.CreateSequence(ctx, seq); err != nil {
		return nil, fmt.Errorf("failed to create sequence: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(seq.ProjectID))
	return seq, nil
}

// UpdateSequence applies the provided fields
func (s *service) UpdateSequence(ctx context.Context, req UpdateSequenceRequest) (*models.Sequence, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.Number != nil && *req.Number <= 0 {
		return nil, ErrInvalidNumber
	}

	seq, err := s.GetSequence(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Number != nil {
		seq.Number = *req.Number
	}
	if req.Title != nil {
		seq.Title = strings.TrimSpace(*req.Title)
	}
	if req.Summary != nil {
		seq.Summary = *req.Summary
	}

	if err := s.repo.UpdateSequence(ctx, seq); err != nil {
		return nil, fmt.Errorf("failed to update sequence: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(seq.ProjectID))
	return seq, nil
}

// DeleteSequence removes a sequence with its scenes
func (s *service) DeleteSequence(ctx context.Context, id string) error {
	seq, err := s.GetSequence(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSequence(ctx, id); err != nil {
		return mapNotFound(err, ErrSequenceNotFound)
	}

	events.Publish(s.publisher, events.DataChanged(seq.ProjectID))
	return nil
}

func mapNotFound(err, domain error) error {
	if errors.Is(err, database.ErrNotFound) {
		return domain
	}
	return err
}
