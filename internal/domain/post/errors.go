package post

import "errors"

var (
	// ErrInvalidInput indicates invalid input for post operations.
	ErrInvalidInput = errors.New("invalid post input")
	// ErrEmptyContent indicates a post or comment with no body.
	ErrEmptyContent = errors.New("content must not be empty")
)
