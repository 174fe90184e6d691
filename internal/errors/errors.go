// Package errors provides sentinel errors and structured error details for modelforge.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for the CLI layer.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying sentinel or error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewMalformedShortcutError reports a shortcut lacking the container delimiter.
func NewMalformedShortcutError(shortcut string) error {
	return &DetailError{
		Type:    "malformed shortcut",
		Message: fmt.Sprintf("the model name must contain a : (%q given)", shortcut),
		Hint:    "expecting something like AcmeBlogBundle:Blog/Post",
		Cause:   ErrMalformedShortcut,
	}
}

// NewAlreadyExistsError reports a generated artifact that is already on disk.
func NewAlreadyExistsError(what, path string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  fmt.Sprintf("%s already exists", what),
		Location: path,
		Hint:     "rename or remove the existing file, generation never overwrites",
		Cause:    ErrAlreadyExists,
	}
}

// NewMissingDependencyError reports a prerequisite scaffold file that must be generated first.
func NewMissingDependencyError(what, path, hint string) error {
	return &DetailError{
		Type:     "missing dependency",
		Message:  fmt.Sprintf("%s does not exist", what),
		Location: path,
		Hint:     hint,
		Cause:    ErrMissingDependency,
	}
}

// NewUnsupportedDriverError reports a storage driver outside the registry.
func NewUnsupportedDriverError(driver string, supported []string) error {
	return &DetailError{
		Type:    "unsupported driver",
		Message: fmt.Sprintf("db driver %q is not supported", driver),
		Hint:    "use one of: " + strings.Join(supported, ", "),
		Cause:   ErrUnsupportedDriver,
	}
}

// NewUnsupportedFormatError reports a configuration format outside the registry.
func NewUnsupportedFormatError(format string, supported []string) error {
	return &DetailError{
		Type:    "unsupported format",
		Message: fmt.Sprintf("format %q is not supported", format),
		Hint:    "use one of: " + strings.Join(supported, ", "),
		Cause:   ErrUnsupportedFormat,
	}
}

// NewDuplicateRegistrationError reports a manager already registered in a config document.
func NewDuplicateRegistrationError(key, location string) error {
	return &DetailError{
		Type:     "duplicate registration",
		Message:  fmt.Sprintf("model manager configuration %q is already imported", key),
		Location: location,
		Cause:    ErrDuplicateRegistration,
	}
}

// NewAnchorMissingError reports a config document lacking an insertion anchor.
func NewAnchorMissingError(anchor, location string) error {
	return &DetailError{
		Type:     "anchor missing",
		Message:  fmt.Sprintf("closing tag %q not found", strings.TrimSpace(anchor)),
		Location: location,
		Hint:     "restore the closing tag or register the manager by hand",
		Cause:    ErrAnchorMissing,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
