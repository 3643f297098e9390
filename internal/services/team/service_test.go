package team

import (
	"context"
	"testing"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignAndRemove(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := database.NewRepository(db)
	p := &models.Project{ID: uuid.NewString(), Title: "Projet", Status: models.StatusPreparation}
	require.NoError(t, repo.CreateProject(ctx, p))

	svc := NewService(repo, nil)

	member, err := svc.Assign(ctx, AssignRequest{ProjectID: p.ID, Name: "Sacha", Email: "sacha@example.com", Role: "dop"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCinematographer, member.Role)

	team, err := svc.ListTeam(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)

	require.NoError(t, svc.Remove(ctx, p.ID, member.ID))
	assert.ErrorIs(t, svc.Remove(ctx, p.ID, member.ID), ErrMemberNotFound)
}

func TestAssign_Validation(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := database.NewRepository(db)
	p := &models.Project{ID: uuid.NewString(), Title: "Projet", Status: models.StatusPreparation}
	require.NoError(t, repo.CreateProject(ctx, p))
	svc := NewService(repo, nil)

	tests := []struct {
		name string
		req  AssignRequest
		want error
	}{
		{"no project", AssignRequest{Name: "A", Role: models.RoleOther}, ErrNoProject},
		{"no name", AssignRequest{ProjectID: p.ID, Role: models.RoleOther}, ErrEmptyName},
		{"bad email", AssignRequest{ProjectID: p.ID, Name: "A", Email: "not-an-email", Role: models.RoleOther}, ErrInvalidEmail},
		{"unknown project", AssignRequest{ProjectID: uuid.NewString(), Name: "A", Role: models.RoleOther}, ErrProjectNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Assign(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err = svc.Assign(ctx, AssignRequest{ProjectID: p.ID, Name: "A", Role: "caterer"})
	assert.Error(t, err)
}
