package breakdown

import "errors"

// Domain errors for the decor / scene breakdown
var (
	ErrEmptyName        = errors.New("decor name cannot be empty")
	ErrEmptyTitle       = errors.New("scene title cannot be empty")
	ErrInvalidNumber    = errors.New("scene number must be positive")
	ErrNoProject        = errors.New("a project is required")
	ErrNoSequence       = errors.New("a sequence is required")
	ErrDecorNotFound    = errors.New("decor not found")
	ErrSceneNotFound    = errors.New("scene not found")
	ErrSequenceNotFound = errors.New("sequence not found")
	ErrProjectNotFound  = errors.New("project not found")

	// ErrDecorOtherProject is returned when a scene points at a decor of another project
	ErrDecorOtherProject = errors.New("decor belongs to another project")
)
