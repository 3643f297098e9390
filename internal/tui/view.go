package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eustache/eustache/internal/current"
)

// View renders the dashboard
func (m Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	currentPanel := m.styles.Panel.Render(m.viewCurrent())
	projects := m.styles.Panel.Render(m.viewProjects())

	var body string
	if m.width > 0 && m.width < 80 {
		body = lipgloss.JoinVertical(lipgloss.Left, currentPanel, projects)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, currentPanel, " ", projects)
	}

	footer := m.styles.Muted.Render(fmt.Sprintf("%s/%s move • %s select • %s refresh • %s help • %s quit",
		m.keys.PrevProject, m.keys.NextProject, m.keys.SelectProject, m.keys.Refresh, m.keys.ShowHelp, m.keys.Quit))

	return body + "\n" + footer + "\n"
}

func (m Model) viewCurrent() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Current project"))
	b.WriteString("\n")

	snap := m.snap
	switch {
	case snap.State == current.StateLoading && !snap.HasProject():
		b.WriteString(m.spinner.View() + " Loading…")
	case !snap.HasProject() && m.storedID == "":
		b.WriteString(m.styles.Muted.Render("No project selected"))
	case !snap.HasProject():
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Selected project %s not found", m.storedID)))
	default:
		p := snap.Project
		title := p.Title
		if snap.State == current.StateLoading {
			title = m.spinner.View() + " " + title
		}
		b.WriteString(m.styles.Selected.Render(title) + "\n")
		b.WriteString(fmt.Sprintf("Status:    %s\n", p.Status))
		if p.Director != "" {
			b.WriteString(fmt.Sprintf("Director:  %s\n", p.Director))
		}
		b.WriteString(fmt.Sprintf("Sequences: %d", snap.SequenceCount))
	}

	if snap.Err != "" {
		b.WriteString("\n" + m.styles.Error.Render(snap.Err))
	}
	return b.String()
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Projects"))
	b.WriteString("\n")

	if m.listErr != nil {
		b.WriteString(m.styles.Error.Render("Error loading projects: " + m.listErr.Error()))
		return b.String()
	}
	if len(m.list) == 0 {
		b.WriteString(m.styles.Muted.Render("No projects yet"))
		return b.String()
	}

	lines := make([]string, 0, len(m.list))
	for i, p := range m.list {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Accent.Render("> ")
		}
		title := p.Title
		if p.ID == m.snap.ProjectID() {
			title = m.styles.Selected.Render("* " + title)
		}
		lines = append(lines, cursor+title)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (m Model) viewHelp() string {
	rows := [][2]string{
		{m.keys.PrevProject + " / up", "previous project"},
		{m.keys.NextProject + " / down", "next project"},
		{m.keys.SelectProject, "use the highlighted project"},
		{m.keys.Refresh, "reload projects and sequence count"},
		{m.keys.ShowHelp, "show this help"},
		{m.keys.Quit + " / ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keys"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-14s %s\n", r[0], r[1]))
	}
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return m.styles.Panel.Render(b.String()) + "\n"
}
