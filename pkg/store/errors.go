// Package store provides status management functionality and error definitions.
package store

import "errors"

// Error definitions for store package.
var (
	// Clone management errors.
	ErrCloneNotFound      = errors.New("clone not found in status")
	ErrCloneAlreadyExists = errors.New("clone already exists")

	// Install management errors.
	ErrInstallNotFound = errors.New("install not found in status")

	// Status file errors.
	ErrStatusFileParse = errors.New("failed to parse status file")
)
