// Package prompt provides interactive prompt functionality for HM.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoicesAvailable       = errors.New("no choices available")
	ErrNoSelectionMade          = errors.New("no selection made")
)
