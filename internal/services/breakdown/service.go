// Package breakdown manages the technical breakdown of a project: its decors
// (sets and locations) and the scenes of each sequence.
package breakdown

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

// Service defines decor and scene operations
type Service interface {
	ListDecors(ctx context.Context, projectID string) ([]*models.Decor, error)
	CreateDecor(ctx context.Context, req CreateDecorRequest) (*models.Decor, error)
	DeleteDecor(ctx context.Context, id string) error

	ListScenes(ctx context.Context, sequenceID string) ([]*models.Scene, error)
	ListScenesByDecor(ctx context.Context, decorID string) ([]*models.Scene, error)
	CreateScene(ctx context.Context, req CreateSceneRequest) (*models.Scene, error)
	DeleteScene(ctx context.Context, id string) error
}

// CreateDecorRequest encapsulates data for creating a decor
type CreateDecorRequest struct {
	ProjectID string
	Name      string
	Location  string
	Kind      models.DecorKind // Optional: "" means INT
}

// CreateSceneRequest encapsulates data for creating a scene
type CreateSceneRequest struct {
	SequenceID  string
	DecorID     string // Optional
	Number      int    // Optional: 0 means next free number
	Title       string
	Period      string
	Description string
}

type repository interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetSequenceByID(ctx context.Context, id string) (*models.Sequence, error)

	CreateDecor(ctx context.Context, d *models.Decor) error
	GetDecorByID(ctx context.Context, id string) (*models.Decor, error)
	GetDecorsByProject(ctx context.Context, projectID string) ([]*models.Decor, error)
	DeleteDecor(ctx context.Context, id string) error

	CreateScene(ctx context.Context, s *models.Scene) error
	GetSceneByID(ctx context.Context, id string) (*models.Scene, error)
	GetScenesBySequence(ctx context.Context, sequenceID string) ([]*models.Scene, error)
	GetScenesByDecor(ctx context.Context, decorID string) ([]*models.Scene, error)
	NextSceneNumber(ctx context.Context, sequenceID string) (int, error)
	DeleteScene(ctx context.Context, id string) error
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new breakdown service
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// ListDecors lists the decors of a project
func (s *service) ListDecors(ctx context.Context, projectID string) ([]*models.Decor, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrNoProject
	}
	return s.repo.GetDecorsByProject(ctx, projectID)
}

// CreateDecor validates and inserts a decor
func (s *service) CreateDecor(ctx context.Context, req CreateDecorRequest) (*models.Decor, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrNoProject
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	kind, err := models.ParseDecorKind(string(req.Kind))
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetProjectByID(ctx, req.ProjectID); err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}

	decor := &models.Decor{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      strings.TrimSpace(req.Name),
		Location:  req.Location,
		Kind:      kind,
	}
	if err := s.repo.CreateDecor(ctx, decor); err != nil {
		return nil, fmt.Errorf("failed to create decor: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(decor.ProjectID))
	return decor, nil
}

// DeleteDecor removes a decor; its scenes are detached, not deleted
func (s *service) DeleteDecor(ctx context.Context, id string) error {
	decor, err := s.repo.GetDecorByID(ctx, id)
	if err != nil {
		return mapNotFound(err, ErrDecorNotFound)
	}
	if err := s.repo.DeleteDecor(ctx, id); err != nil {
		return mapNotFound(err, ErrDecorNotFound)
	}

	events.Publish(s.publisher, events.DataChanged(decor.ProjectID))
	return nil
}

// ListScenes lists the scenes of a sequence
func (s *service) ListScenes(ctx context.Context, sequenceID string) ([]*models.Scene, error) {
	if strings.TrimSpace(sequenceID) == "" {
		return nil, ErrNoSequence
	}
	return s.repo.GetScenesBySequence(ctx, sequenceID)
}

// ListScenesByDecor lists the scenes shot in a decor (shooting plan by location)
func (s *service) ListScenesByDecor(ctx context.Context, decorID string) ([]*models.Scene, error) {
	if _, err := s.repo.GetDecorByID(ctx, decorID); err != nil {
		return nil, mapNotFound(err, ErrDecorNotFound)
	}
	return s.repo.GetScenesByDecor(ctx, decorID)
}

// CreateScene validates and inserts a scene. The decor, when given, must
// belong to the sequence's project.
func (s *service) CreateScene(ctx context.Context, req CreateSceneRequest) (*models.Scene, error) {
	if strings.TrimSpace(req.SequenceID) == "" {
		return nil, ErrNoSequence
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.Number < 0 {
		return nil, ErrInvalidNumber
	}

	seq, err := s.repo.GetSequenceByID(ctx, req.SequenceID)
	if err != nil {
		return nil, mapNotFound(err, ErrSequenceNotFound)
	}

	var decorID *string
	if req.DecorID != "" {
		decor, err := s.repo.GetDecorByID(ctx, req.DecorID)
		if err != nil {
			return nil, mapNotFound(err, ErrDecorNotFound)
		}
		if decor.ProjectID != seq.ProjectID {
			return nil, ErrDecorOtherProject
		}
		decorID = &decor.ID
	}

	number := req.Number
	if number == 0 {
		if number, err = s.repo.NextSceneNumber(ctx, seq.ID); err != nil {
			return nil, err
		}
	}

	scene := &models.Scene{
		ID:          uuid.NewString(),
		SequenceID:  seq.ID,
		DecorID:     decorID,
		Number:      number,
		Title:       strings.TrimSpace(req.Title),
		Period:      strings.ToUpper(strings.TrimSpace(req.Period)),
		Description: req.Description,
	}
	if err := s.repo.CreateScene(ctx, scene); err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(seq.ProjectID))
	return scene, nil
}

// DeleteScene removes a scene
func (s *service) DeleteScene(ctx context.Context, id string) error {
	scene, err := s.repo.GetSceneByID(ctx, id)
	if err != nil {
		return mapNotFound(err, ErrSceneNotFound)
	}

	var projectID string
	if seq, err := s.repo.GetSequenceByID(ctx, scene.SequenceID); err == nil {
		projectID = seq.ProjectID
	}

	if err := s.repo.DeleteScene(ctx, id); err != nil {
		return mapNotFound(err, ErrSceneNotFound)
	}

	events.Publish(s.publisher, events.DataChanged(projectID))
	return nil
}

func mapNotFound(err, domain error) error {
	if errors.Is(err, database.ErrNotFound) {
		return domain
	}
	return err
}
