package sequence

import "errors"

// Domain errors for sequence service
var (
	ErrEmptyTitle        = errors.New("sequence title cannot be empty")
	ErrInvalidNumber     = errors.New("sequence number must be positive")
	ErrInvalidSequenceID = errors.New("invalid sequence ID")
	ErrNoProject         = errors.New("a project is required")
	ErrSequenceNotFound  = errors.New("sequence not found")
	ErrProjectNotFound   = errors.New("project not found")
)
