package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "eustache"

// Environment overrides
const (
	EnvDatabase = "EUSTACHE_DB"
	EnvState    = "EUSTACHE_STATE"
	EnvLogLevel = "EUSTACHE_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	DataDir        string      `yaml:"data_dir"`
	DatabasePath   string      `yaml:"database_path"`
	StatePath      string      `yaml:"state_path"`
	LogLevel       string      `yaml:"log_level"`
	WatchSelection *bool       `yaml:"watch_selection"`
	KeyMappings    KeyMappings `yaml:"key_mappings"`
	Theme          Theme       `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. Environment overrides are
// applied last.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		config.applyEnv()
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		config.applyEnv()
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.applyEnv()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ShouldWatchSelection reports whether long-running views follow selection
// changes made by other processes. Defaults to true.
func (c *Config) ShouldWatchSelection() bool {
	return c.WatchSelection == nil || *c.WatchSelection
}

// LogDir is where log files are written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// defaultDataDir is ~/.eustache, or the working directory when there is no home
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// defaultStatePath prefers XDG_STATE_HOME and falls back to the data dir
func defaultStatePath(dataDir string) string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName, "state.yaml")
	}
	return filepath.Join(dataDir, "state.yaml")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(c.DataDir, appName+".db")
	}
	if c.StatePath == "" {
		c.StatePath = defaultStatePath(c.DataDir)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabase); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvState); v != "" {
		c.StatePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}
