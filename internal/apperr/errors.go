// Package apperr defines sentinel errors shared across service layers.
package apperr

import "errors"

var (
	// ErrNotFound means a logical path did not resolve to any document under
	// the docs root. This is a normal outcome, mapped to 404 at the boundary.
	ErrNotFound = errors.New("not found")

	// ErrUnreadable means a resolved document exists but its content could
	// not be read or decoded as UTF-8 text. Mapped to 500 at the boundary.
	ErrUnreadable = errors.New("unreadable")
)
