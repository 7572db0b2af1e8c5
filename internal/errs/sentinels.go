// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested note does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized indicates the caller does not own the note. Handlers
	// report it identically to ErrNotFound so note ids cannot be probed.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrEmptyText indicates the note text is empty after trimming.
	ErrEmptyText = errors.New("text is required")
)
