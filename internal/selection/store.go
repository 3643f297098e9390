package selection

import (
	"log/slog"
)

// SelectedProjectKey is the slot holding the current project id
const SelectedProjectKey = "selected_project_id"

// Store reads and writes the selected project identifier.
//
// It never fails on read: when no medium is available, or the medium errors,
// Get reports "no selection". Identifiers are not validated.
type Store struct {
	medium Medium
	logger *slog.Logger
}

// NewStore wraps medium. A nil medium gives a store that always reports no
// selection and ignores writes.
func NewStore(medium Medium, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{medium: medium, logger: logger}
}

// Get returns the stored project id, or ok=false when there is none
func (s *Store) Get() (id string, ok bool) {
	if s == nil || s.medium == nil {
		return "", false
	}

	value, found, err := s.medium.Get(SelectedProjectKey)
	if err != nil {
		s.logger.Warn("selection unreadable, treating as empty", "error", err)
		return "", false
	}
	if !found || value == "" {
		return "", false
	}
	return value, true
}

// Set overwrites the stored project id. It is a no-op without a medium.
func (s *Store) Set(id string) error {
	if s == nil || s.medium == nil {
		return nil
	}
	if err := s.medium.Set(SelectedProjectKey, id); err != nil {
		s.logger.Error("failed to persist selection", "project_id", id, "error", err)
		return err
	}
	s.logger.Debug("selection persisted", "project_id", id)
	return nil
}
