// Package runner provides hook execution functionality and error definitions.
package runner

import "errors"

// Error definitions for runner package.
var (
	ErrHookNotFound    = errors.New("hook not found in configuration")
	ErrEntryResolution = errors.New("failed to resolve hook entry")
	ErrCloneFailed     = errors.New("failed to clone hook repository")
)
