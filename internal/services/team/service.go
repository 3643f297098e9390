// Package team assigns people to crew roles on a project
package team

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
)

// Service defines role assignment operations
type Service interface {
	ListTeam(ctx context.Context, projectID string) ([]*models.TeamMember, error)
	Assign(ctx context.Context, req AssignRequest) (*models.TeamMember, error)
	Remove(ctx context.Context, projectID, memberID string) error
}

// AssignRequest encapsulates a role assignment
type AssignRequest struct {
	ProjectID string
	Name      string
	Email     string
	Role      models.Role
}

type repository interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	CreateTeamMember(ctx context.Context, m *models.TeamMember) error
	GetTeamByProject(ctx context.Context, projectID string) ([]*models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, projectID, id string) error
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new team service
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) ListTeam(ctx context.Context, projectID string) ([]*models.TeamMember, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, ErrNoProject
	}
	return s.repo.GetTeamByProject(ctx, projectID)
}

// Assign gives someone a role on a project
func (s *service) Assign(ctx context.Context, req AssignRequest) (*models.TeamMember, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrNoProject
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	role, err := models.ParseRole(string(req.Role))
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
	}
	if _, err := s.repo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	member := &models.TeamMember{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Role:      role,
	}
	if err := s.repo.CreateTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	events.Publish(s.publisher, events.DataChanged(member.ProjectID))
	return member, nil
}

// Remove deletes an assignment
func (s *service) Remove(ctx context.Context, projectID, memberID string) error {
	if err := s.repo.DeleteTeamMember(ctx, projectID, memberID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	events.Publish(s.publisher, events.DataChanged(projectID))
	return nil
}
