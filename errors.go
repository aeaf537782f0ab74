package gamebyte

import (
	"fmt"
	"strings"
)

// UnresolvedBindingError is returned by Container.Make when no binding exists
// for the requested key.
type UnresolvedBindingError struct {
	Key string
}

func (e *UnresolvedBindingError) Error() string {
	return fmt.Sprintf("gamebyte: no binding registered for %q", e.Key)
}

// CircularResolutionError is returned by Container.Make when a factory
// transitively requests the key it is currently building. Stack holds the
// resolution chain, outermost first, ending with the repeated key.
type CircularResolutionError struct {
	Stack []string
}

func (e *CircularResolutionError) Error() string {
	return fmt.Sprintf("gamebyte: circular resolution: %s", strings.Join(e.Stack, " -> "))
}

// DuplicateSceneIDError is returned by SceneManager.Add when a scene with the
// same id is already registered.
type DuplicateSceneIDError struct {
	ID string
}

func (e *DuplicateSceneIDError) Error() string {
	return fmt.Sprintf("gamebyte: scene %q is already registered", e.ID)
}

// SceneNotFoundError is returned by SceneManager operations that target a
// scene the manager cannot act on: SwitchTo on an unregistered id, or Remove
// on an id that is unregistered or currently active.
type SceneNotFoundError struct {
	ID string
}

func (e *SceneNotFoundError) Error() string {
	return fmt.Sprintf("gamebyte: scene %q not available", e.ID)
}

// DuplicateScopeError is returned by ResourceTracker.CreateScope when the
// scope is already open. Duplicate creation indicates a lifecycle bug, so it
// is an error rather than a merge.
type DuplicateScopeError struct {
	Name string
}

func (e *DuplicateScopeError) Error() string {
	return fmt.Sprintf("gamebyte: scope %q is already open", e.Name)
}

// UnknownScopeError is returned by ResourceTracker.Track when the named scope
// was never created (or has already been disposed).
type UnknownScopeError struct {
	Name string
}

func (e *UnknownScopeError) Error() string {
	return fmt.Sprintf("gamebyte: scope %q is not open", e.Name)
}
