// Package forge provides forge integrations and error definitions.
package forge

import "errors"

// Error definitions for forge package.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrInvalidRepoURL   = errors.New("invalid repository URL")
	ErrRepoNotFound     = errors.New("repository not found")
	ErrNoTags           = errors.New("repository has no releases or tags")
	ErrUnauthorized     = errors.New("authentication failed")
	ErrRateLimited      = errors.New("rate limit exceeded")
)
