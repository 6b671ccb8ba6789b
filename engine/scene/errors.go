package scene

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation against an unknown object id.
// Wrap with %w so callers can errors.Is it.
var ErrNotFound = errors.New("scene: object not found")

// ValidationError rejects degenerate geometry or an invalid reference.
// The scene is left untouched by the failed call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scene: invalid %s: %s", e.Field, e.Reason)
}
