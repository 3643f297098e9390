// Package selection persists the identifier of the project the user is
// working on, so every command, TUI session and later run agrees on it.
package selection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Medium is a tiny key-value persistence slot
type Medium interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// FileMedium keeps key-value pairs in a YAML document on disk.
// Writes go to a temp file in the same directory and are renamed into place,
// so readers in other processes never observe a half-written file.
type FileMedium struct {
	path string
	mu   sync.Mutex
}

// NewFileMedium returns a medium backed by the YAML file at path.
// The file and its directory are created lazily on first Set.
func NewFileMedium(path string) *FileMedium {
	return &FileMedium{path: path}
}

// Path returns the backing file location
func (m *FileMedium) Path() string {
	return m.path
}

// Get reads key from the file. A missing file is not an error.
func (m *FileMedium) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, err := m.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set writes key, preserving the other keys of the document
func (m *FileMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, err := m.load()
	if err != nil {
		// A corrupt document is replaced rather than blocking the selection forever
		values = map[string]string{}
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

func (m *FileMedium) load() (map[string]string, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", m.path, err)
	}
	return values, nil
}

// MemoryMedium is a process-local medium, for tests and --ephemeral runs
type MemoryMedium struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryMedium creates an empty in-memory medium
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{values: make(map[string]string)}
}

func (m *MemoryMedium) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Compile-time verification
var (
	_ Medium = (*FileMedium)(nil)
	_ Medium = (*MemoryMedium)(nil)
)
