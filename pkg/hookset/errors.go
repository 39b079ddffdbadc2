// Package hookset provides hook configuration management and error definitions.
package hookset

import "errors"

// Error definitions for hookset package.
var (
	// Load-time errors.
	ErrConfigNotFound  = errors.New("hook configuration file not found")
	ErrConfigMalformed = errors.New("failed to parse hook configuration file")

	// Validation errors.
	ErrMissingRepoURL   = errors.New("repo cannot be empty")
	ErrMissingRev       = errors.New("rev is required for non-local repos")
	ErrMissingHookID    = errors.New("hook id cannot be empty")
	ErrDuplicateHookID  = errors.New("duplicate hook id")
	ErrMissingEntry     = errors.New("hook entry cannot be empty")
	ErrUnknownLanguage  = errors.New("unknown hook language")
	ErrUnknownType      = errors.New("unknown file type tag")
	ErrUnknownStage     = errors.New("unknown hook stage")
	ErrInvalidFiles     = errors.New("invalid files pattern")
	ErrInvalidExclude   = errors.New("invalid exclude pattern")

	// Lookup errors.
	ErrHookNotFound = errors.New("hook not found in configuration")
)
