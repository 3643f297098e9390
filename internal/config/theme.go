package config

// Theme holds the colors used by the TUI and human CLI output.
// Values are anything lipgloss.Color accepts: hex codes or ANSI numbers.
type Theme struct {
	Accent  string `yaml:"accent"`
	Muted   string `yaml:"muted"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
	Border  string `yaml:"border"`
}

// DefaultTheme returns the built-in palette
func DefaultTheme() Theme {
	return Theme{
		Accent:  "#E6B450",
		Muted:   "#6C7086",
		Success: "#A6E3A1",
		Error:   "#F38BA8",
		Border:  "#45475A",
	}
}

func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()

	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.Muted == "" {
		t.Muted = defaults.Muted
	}
	if t.Success == "" {
		t.Success = defaults.Success
	}
	if t.Error == "" {
		t.Error = defaults.Error
	}
	if t.Border == "" {
		t.Border = defaults.Border
	}
}
