package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyTitle        = errors.New("project title cannot be empty")
	ErrTitleTooLong      = errors.New("project title cannot exceed 200 characters")
	ErrInvalidProjectID  = errors.New("invalid project ID")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidDateWindow = errors.New("project end date is before its start date")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)
