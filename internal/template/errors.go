// Package template resolves the prompt and specification files for a
// session from a prompts directory. Files prefixed with the active project
// name take priority over the defaults; a missing default is fatal.
package template

import "errors"

// Sentinel errors for template resolution.
var (
	// ErrMissingTemplate indicates neither the project variant nor the default file exists.
	ErrMissingTemplate = errors.New("template: required template not found")

	// ErrUnknownKind indicates a prompt kind other than initializer or coding.
	ErrUnknownKind = errors.New("template: unknown prompt kind")

	// ErrInvalidProjectName indicates a project name that cannot be used as a file prefix.
	ErrInvalidProjectName = errors.New("template: invalid project name")

	// ErrResetDisabled indicates ClearActiveProject was called without AllowReset.
	ErrResetDisabled = errors.New("template: active project reset is disabled")
)
