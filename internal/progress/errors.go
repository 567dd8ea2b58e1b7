package progress

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports an unknown item, quest, or day reference. Surfaced
// to the caller as-is; nothing is retried and no state is touched.
type NotFoundError struct {
	Kind string // "item", "quest", "day"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidMinutesError reports a non-positive study session length.
type InvalidMinutesError struct {
	Minutes int
}

func (e *InvalidMinutesError) Error() string {
	return fmt.Sprintf("study session length %d min must be positive", e.Minutes)
}
