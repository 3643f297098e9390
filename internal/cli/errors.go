package cli

import (
	"errors"

	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/services/breakdown"
	"github.com/eustache/eustache/internal/services/project"
	"github.com/eustache/eustache/internal/services/script"
	"github.com/eustache/eustache/internal/services/sequence"
	"github.com/eustache/eustache/internal/services/team"
)

// ErrNoProject is returned when a command needs a project and none is
// selected or given with --project
var ErrNoProject = errors.New("no project selected")

// ExitCodeError carries the process exit code for a failed command.
// main unwraps it with errors.As.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

type classification struct {
	exit int
	code string
}

var notFoundErrors = []error{
	project.ErrProjectNotFound,
	sequence.ErrSequenceNotFound,
	sequence.ErrProjectNotFound,
	breakdown.ErrDecorNotFound,
	breakdown.ErrSceneNotFound,
	breakdown.ErrSequenceNotFound,
	breakdown.ErrProjectNotFound,
	script.ErrScriptNotFound,
	script.ErrProjectNotFound,
	script.ErrNoScript,
	team.ErrMemberNotFound,
	team.ErrProjectNotFound,
}

var validationErrors = []error{
	models.ErrInvalidValue,
	project.ErrEmptyTitle,
	project.ErrTitleTooLong,
	project.ErrInvalidProjectID,
	project.ErrInvalidStatus,
	project.ErrInvalidDateWindow,
	sequence.ErrEmptyTitle,
	sequence.ErrInvalidNumber,
	sequence.ErrInvalidSequenceID,
	breakdown.ErrEmptyName,
	breakdown.ErrEmptyTitle,
	breakdown.ErrInvalidNumber,
	breakdown.ErrDecorOtherProject,
	script.ErrEmptyTitle,
	team.ErrEmptyName,
	team.ErrInvalidEmail,
}

var usageErrors = []error{
	ErrNoProject,
	sequence.ErrNoProject,
	breakdown.ErrNoProject,
	breakdown.ErrNoSequence,
	script.ErrNoProject,
	team.ErrNoProject,
}

func classify(err error) classification {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return classification{ExitNotFound, "NOT_FOUND"}
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return classification{ExitValidation, "VALIDATION_ERROR"}
		}
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return classification{ExitUsage, "USAGE_ERROR"}
		}
	}
	return classification{ExitError, "ERROR"}
}
