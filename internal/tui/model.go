// Package tui is the terminal dashboard bound to the current project.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eustache/eustache/internal/config"
	"github.com/eustache/eustache/internal/current"
	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/selection"
	"github.com/eustache/eustache/internal/services/project"
)

// Model is the dashboard state
type Model struct {
	ctx      context.Context
	binding  *current.Binding
	projects project.Service
	watcher  *selection.Watcher
	keys     config.KeyMappings
	styles   Styles

	spinner  spinner.Model
	snap     current.Snapshot
	storedID string
	list     []*models.Project
	cursor   int
	listErr  error
	showHelp bool

	width  int
	height int
}

// New creates the dashboard model. The binding is mounted by Init.
func New(ctx context.Context, binding *current.Binding, projects project.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	styles := NewStyles(cfg.Theme)
	s.Style = styles.Accent

	return Model{
		ctx:      ctx,
		binding:  binding,
		projects: projects,
		keys:     cfg.KeyMappings,
		styles:   styles,
		spinner:  s,
		snap:     binding.Snapshot(),
	}
}

// Init mounts the binding and loads the project list
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.mount(), m.loadProjects())
}

// WithWatcher makes the binding follow selection changes made by other
// processes once mounted. w must be started by the caller.
func (m Model) WithWatcher(w *selection.Watcher) Model {
	m.watcher = w
	return m
}

// Binding returns the binding rendered by the model
func (m Model) Binding() *current.Binding {
	return m.binding
}

// Snapshot returns the last snapshot received by the model
func (m Model) Snapshot() current.Snapshot {
	return m.snap
}

// Cursor returns the index of the highlighted project
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) mount() tea.Cmd {
	ctx, b, w := m.ctx, m.binding, m.watcher
	return func() tea.Msg {
		b.Mount(ctx)
		b.WatchStorage(ctx, w)
		return BindingChangedMsg{}
	}
}

func (m Model) loadProjects() tea.Cmd {
	ctx, svc := m.ctx, m.projects
	return func() tea.Msg {
		projects, err := svc.GetAllProjects(ctx)
		return ProjectsLoadedMsg{Projects: projects, Err: err}
	}
}

func (m Model) selectProject(id string) tea.Cmd {
	ctx, b := m.ctx, m.binding
	return func() tea.Msg {
		b.SetProject(ctx, id)
		return BindingChangedMsg{}
	}
}

func (m Model) refresh() tea.Cmd {
	ctx, b := m.ctx, m.binding
	return func() tea.Msg {
		b.Refresh(ctx)
		return BindingChangedMsg{}
	}
}

// syncBinding copies the binding's latest state into the model
func (m *Model) syncBinding() {
	m.snap = m.binding.Snapshot()
	m.storedID = ""
	if !m.snap.HasProject() {
		m.storedID = m.binding.StoredID()
	}
}

// cursorOnSelection moves the cursor to the selected project when it is listed
func (m *Model) cursorOnSelection() {
	for i, p := range m.list {
		if p.ID == m.snap.ProjectID() {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.list) {
		m.cursor = max(len(m.list)-1, 0)
	}
}
