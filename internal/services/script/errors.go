package script

import "errors"

var (
	ErrEmptyTitle      = errors.New("script title cannot be empty")
	ErrNoProject       = errors.New("a project is required")
	ErrScriptNotFound  = errors.New("script not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrNoScript        = errors.New("project has no script yet")
)
