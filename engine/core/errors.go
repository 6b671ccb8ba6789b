package core

import (
	"fmt"

	"github.com/Hendawy97/giraffe-demo/engine/project"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
)

// InitializationError is fatal: construction failed, there is no engine.
type InitializationError struct {
	Reason string
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("engine: initialization failed: %s", e.Reason)
}

// The remaining taxonomy lives with the package that raises it; aliased
// here so SDK callers import one package.
type (
	ValidationError = scene.ValidationError
	LoadError       = project.LoadError
)

var ErrNotFound = scene.ErrNotFound
