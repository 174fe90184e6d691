package cmd

import (
	stderrors "errors"

	"github.com/dosanma1/modelforge/internal/errors"
)

// Exit codes.
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitValidationError   = 2
	ExitNotFound          = 3
	ExitConflict          = 4
	ExitMissingDependency = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case stderrors.Is(err, errors.ErrMalformedShortcut),
		stderrors.Is(err, errors.ErrUnsupportedDriver),
		stderrors.Is(err, errors.ErrUnsupportedFormat),
		stderrors.Is(err, errors.ErrDuplicateField),
		stderrors.Is(err, errors.ErrValidation):
		return ExitValidationError
	case stderrors.Is(err, errors.ErrNotFound):
		return ExitNotFound
	case stderrors.Is(err, errors.ErrAlreadyExists),
		stderrors.Is(err, errors.ErrDuplicateRegistration):
		return ExitConflict
	case stderrors.Is(err, errors.ErrMissingDependency),
		stderrors.Is(err, errors.ErrAnchorMissing):
		return ExitMissingDependency
	default:
		return ExitGeneralError
	}
}

// toExitError attaches the exit code of err, leaving existing ExitErrors alone.
func toExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return err
	}
	return NewExitError(err, ExitCodeFromError(err))
}
