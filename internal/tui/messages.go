package tui

import "github.com/eustache/eustache/internal/models"

// BindingChangedMsg tells the model the binding state moved on. The model
// reads the binding's current snapshot when handling it, so delivery order
// does not matter.
type BindingChangedMsg struct{}

// ProjectsLoadedMsg carries the result of listing projects
type ProjectsLoadedMsg struct {
	Projects []*models.Project
	Err      error
}

// ReloadProjectsMsg asks the model to list projects again
type ReloadProjectsMsg struct{}
