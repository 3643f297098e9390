// Package current resolves and tracks the project the user is working on.
//
// A Resolver turns the persisted selection into a project record and its
// sequence count. A Binding keeps that result up to date for one view (a CLI
// invocation or the TUI) and broadcasts selection changes so every other
// mounted binding refreshes too.
package current

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/selection"
)

// ProjectSource is the pair of reads the resolver needs.
// project.Service satisfies it.
type ProjectSource interface {
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetSequenceCount(ctx context.Context, projectID string) (int, error)
}

// Resolution is the outcome of one resolve pass.
// Project is nil when nothing is selected, the project is gone, or the fetch
// failed; the three cases are deliberately indistinguishable.
type Resolution struct {
	Project       *models.Project
	SequenceCount int
	Err           string
}

// Resolver reads the selection and fetches the matching project
type Resolver struct {
	store    *selection.Store
	projects ProjectSource
	logger   *slog.Logger
}

// NewResolver creates a resolver over store and projects
func NewResolver(store *selection.Store, projects ProjectSource, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, projects: projects, logger: logger}
}

// Store returns the selection store the resolver reads from
func (r *Resolver) Store() *selection.Store {
	return r.store
}

// ResolveSelected never returns an error: failures are logged and degrade to
// an empty or partial Resolution.
func (r *Resolver) ResolveSelected(ctx context.Context) Resolution {
	id, ok := r.store.Get()
	if !ok {
		return Resolution{}
	}

	if r.projects == nil {
		return Resolution{}
	}

	project, err := r.projects.GetProjectByID(ctx, id)
	if err != nil {
		r.logger.Warn("failed to load selected project", "project_id", id, "error", err)
		return Resolution{}
	}
	res := Resolution{Project: project}

	// Count is a second, independent read; its failure keeps the project
	count, err := r.projects.GetSequenceCount(ctx, id)
	if err != nil {
		r.logger.Warn("failed to count sequences", "project_id", id, "error", err)
		res.Err = fmt.Sprintf("failed to count sequences: %v", err)
		return res
	}
	res.SequenceCount = count

	return res
}
