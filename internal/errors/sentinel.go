package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrMalformedShortcut indicates a model shortcut without the container delimiter.
	ErrMalformedShortcut = errors.New("malformed shortcut")

	// ErrAlreadyExists indicates a target file that generation would overwrite.
	ErrAlreadyExists = errors.New("already exists")

	// ErrMissingDependency indicates a prerequisite scaffold file is absent.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrUnsupportedDriver indicates a storage driver outside the known set.
	ErrUnsupportedDriver = errors.New("unsupported driver")

	// ErrUnsupportedFormat indicates a configuration format outside the known set.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrDuplicateRegistration indicates a manager already registered in a driver config.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrAnchorMissing indicates a config document without the insertion anchor.
	ErrAnchorMissing = errors.New("anchor missing")

	// ErrDuplicateField indicates the same field name given twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrNotFound indicates a container, template or config file was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrAborted indicates the operator declined the generation.
	ErrAborted = errors.New("aborted")
)
