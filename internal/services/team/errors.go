package team

import "errors"

var (
	ErrEmptyName       = errors.New("member name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrNoProject       = errors.New("a project is required")
	ErrMemberNotFound  = errors.New("team member not found")
	ErrProjectNotFound = errors.New("project not found")
)
