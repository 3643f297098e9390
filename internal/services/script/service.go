// Package script stores screenplay versions. Every upload creates a new
// version; older versions are kept for comparison.
package script

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

// Service defines script operations
type Service interface {
	ListScripts(ctx context.Context, projectID string) ([]*models.Script, error)
	GetScript(ctx context.Context, id string) (*models.Script, error)
	GetLatestScript(ctx context.Context, projectID string) (*models.Script, error)
	AddScript(ctx context.Context, req AddScriptRequest) (*models.Script, error)
}

// AddScriptRequest encapsulates a new script version
type AddScriptRequest struct {
	ProjectID string
	Title     string
	Content   string
}

type repository interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	CreateScript(ctx context.Context, s *models.Script) error
	GetScriptByID(ctx context.Context, id string) (*models.Script, error)
	GetLatestScript(ctx context.Context, projectID string) (*models.Script, error)
	GetScriptsByProject(ctx context.Context, projectID string) ([]*models.Script, error)
	NextScriptVersion(ctx context.Context, projectID string) (int, error)
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new script service
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) ListScripts(ctx context.Context, projectID string) ([]*models.Script, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrNoProject
	}
	return s.repo.GetScriptsByProject(ctx, projectID)
}

func (s *service) GetScript(ctx context.Context, id string) (*models.Script, error) {
	script, err := s.repo.GetScriptByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrScriptNotFound
	}
	return script, err
}

func (s *service) GetLatestScript(ctx context.Context, projectID string) (*models.Script, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrNoProject
	}
	script, err := s.repo.GetLatestScript(ctx, projectID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNoScript
	}
	return script, err
}

// AddScript stores content as the next version of the project's script
func (s *service) AddScript(ctx context.Context, req AddScriptRequest) (*models.Script, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrNoProject
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if _, err := s.repo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	version, err := s.repo.NextScriptVersion(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	script := &models.Script{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     strings.TrimSpace(req.Title),
		Version:   version,
		Content:   req.Content,
	}
	if err := s.repo.CreateScript(ctx, script); err != nil {
		return nil, fmt.Errorf("failed to add script: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(script.ProjectID))
	return script, nil
}
