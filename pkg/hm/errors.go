// Package hm provides the hook manager orchestrator.
package hm

import "errors"

// Error definitions for hm package.
var (
	ErrNotAGitRepository = errors.New("not inside a git repository")
	ErrUnknownStage      = errors.New("unknown hook stage")
	ErrForeignHook       = errors.New("a hook not managed by hm already exists")
	ErrInitCancelled     = errors.New("init cancelled by user")
	ErrNoHooksConfigured = errors.New("no hooks configured")
)
