package config

// KeyMappings defines the configurable TUI key bindings
type KeyMappings struct {
	// Navigation
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Selection
	SelectProject string `yaml:"select_project"`
	Refresh       string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevProject:   "k",
		NextProject:   "j",
		SelectProject: "enter",
		Refresh:       "r",
		ShowHelp:      "?",
		Quit:          "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevProject == "" {
		k.PrevProject = defaults.PrevProject
	}
	if k.NextProject == "" {
		k.NextProject = defaults.NextProject
	}
	if k.SelectProject == "" {
		k.SelectProject = defaults.SelectProject
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
