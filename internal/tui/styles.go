package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/eustache/eustache/internal/config"
)

// Styles holds the lipgloss styles of the dashboard
type Styles struct {
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Header   lipgloss.Style
}

// NewStyles builds the dashboard styles from a theme
func NewStyles(theme config.Theme) Styles {
	return Styles{
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Success)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			MarginBottom(1),
	}
}
