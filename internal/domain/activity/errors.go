package activity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates invalid input for activity operations.
var ErrInvalidInput = errors.New("invalid activity input")

// FetchError is the single error surfaced when any backend query of an
// aggregation pass fails. The pass aborts atomically; a partial activity
// list is never returned alongside one.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
