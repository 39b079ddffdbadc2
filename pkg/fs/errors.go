// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	ErrLockTimeout        = errors.New("timed out waiting for file lock")
	ErrExecutableNotFound = errors.New("executable not found in PATH")
)
