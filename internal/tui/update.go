package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eustache/eustache/internal/current"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case BindingChangedMsg:
		wasReady := m.snap.State == current.StateReady
		m.syncBinding()
		if !wasReady && m.snap.State == current.StateReady {
			m.cursorOnSelection()
		}
		if m.snap.State == current.StateLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case ProjectsLoadedMsg:
		m.listErr = msg.Err
		if msg.Err == nil {
			m.list = msg.Projects
			m.cursorOnSelection()
		}
		return m, nil

	case ReloadProjectsMsg:
		return m, m.loadProjects()

	case spinner.TickMsg:
		if m.snap.State != current.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case m.keys.Quit, "ctrl+c":
		return m, tea.Quit
	case m.keys.ShowHelp:
		m.showHelp = true
	case m.keys.PrevProject, "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case m.keys.NextProject, "down":
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}
	case m.keys.SelectProject:
		if m.cursor < len(m.list) {
			return m, m.selectProject(m.list[m.cursor].ID)
		}
	case m.keys.Refresh:
		return m, tea.Batch(m.refresh(), m.loadProjects())
	}
	return m, nil
}
