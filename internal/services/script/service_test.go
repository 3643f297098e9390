package script

import (
	"context"
	"testing"

	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScript_Versions(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := database.NewRepository(db)
	p := &models.Project{ID: uuid.NewString(), Title: "Projet", Status: models.StatusPreparation}
	require.NoError(t, repo.CreateProject(ctx, p))

	svc := NewService(repo, nil)

	_, err = svc.GetLatestScript(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNoScript)

	v1, err := svc.AddScript(ctx, AddScriptRequest{ProjectID: p.ID, Title: "Premier jet", Content: "INT. CUISINE - JOUR"})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	v2, err := svc.AddScript(ctx, AddScriptRequest{ProjectID: p.ID, Title: "Version tournage", Content: "INT. CUISINE - NUIT"})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)

	latest, err := svc.GetLatestScript(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, latest.ID)
	assert.Equal(t, "INT. CUISINE - NUIT", latest.Content)

	first, err := svc.GetScript(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, "INT. CUISINE - JOUR", first.Content)

	_, err = svc.GetScript(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrScriptNotFound)

	_, err = svc.AddScript(ctx, AddScriptRequest{ProjectID: p.ID})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.AddScript(ctx, AddScriptRequest{ProjectID: uuid.NewString(), Title: "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
