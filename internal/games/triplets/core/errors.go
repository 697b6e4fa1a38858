package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned for level numbers below 1.
	ErrInvalidLevel = errors.New("triplets: level must be >= 1")

	// ErrNoLevel is returned by player actions before StartLevel succeeded.
	ErrNoLevel = errors.New("triplets: no level in progress")

	// ErrEmptyStack is returned when moving from a column with nothing on it.
	ErrEmptyStack = errors.New("triplets: stack is empty")

	// ErrNothingToUndo is returned by Undo when no snapshot is stored.
	ErrNothingToUndo = errors.New("triplets: nothing to undo")
)

// InvariantError reports a generation-time defect: a multiset or placement
// that breaks the triplet or conservation guarantees.
type InvariantError struct {
	Code    string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invariantf(code, format string, args ...any) *InvariantError {
	return &InvariantError{Code: code, Message: fmt.Sprintf(format, args...)}
}
