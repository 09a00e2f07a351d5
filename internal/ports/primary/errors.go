package primary

import "github.com/cockroachdb/errors"

// Error categories surfaced by the services. Errors returned by services match one of
// these with errors.Is when they fall into a category.
var (
	// ErrInvalidName is returned for a name that is not an upper camel case identifier.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidTarget is returned when the selected path has the wrong type.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrAlreadyExists is returned when a file or folder to be created already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrModuleNotFound is returned when no module declares a class that needs one.
	ErrModuleNotFound = errors.New("module not found")
	// ErrPromptDismissed is returned when the user dismisses a prompt.
	ErrPromptDismissed = errors.New("prompt dismissed")
	// ErrGenerationNotFound is returned when no recorded generation has the requested ID.
	ErrGenerationNotFound = errors.New("generation not found")
	// ErrNoTemplate is returned when a configured template cannot be loaded.
	ErrNoTemplate = errors.New("template not found")
)
