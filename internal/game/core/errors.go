package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrUnknownAction      = errors.New("unknown action type")
)

// InvariantError is the panic payload for internal consistency violations,
// e.g. a flood fill that detonates a mine. It is never recovered by the engine.
type InvariantError struct {
	Message string
}

func (e InvariantError) Error() string {
	return "invariant violated: " + e.Message
}

// Invariantf panics with an InvariantError built from the format string
func Invariantf(format string, args ...any) {
	panic(InvariantError{Message: fmt.Sprintf(format, args...)})
}

// WrapActionError adds the action to an error message
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}
