package gamebyte

import (
	"errors"

	"go.uber.org/zap"
)

// Disposable is anything whose lifetime can be tied to a resource scope.
// Dispose releases the underlying resource; the returned error is reported
// but never blocks disposal of sibling resources.
type Disposable interface {
	Dispose() error
}

// SceneScope returns the conventional scope name for a scene id. The
// application core opens this scope when the scene activates and disposes it
// when the scene deactivates.
func SceneScope(id string) string {
	return "scene:" + id
}

// scope holds the disposables owned by one named scope, in tracking order.
type scope struct {
	handles []Disposable
}

// ResourceTracker is the scoped ownership registry: each open scope owns a
// set of disposables, and disposing the scope disposes every handle in it.
// A handle belongs to exactly one scope.
type ResourceTracker struct {
	scopes map[string]*scope
	log    *zap.Logger
}

// NewResourceTracker creates an empty tracker. A nil logger falls back to a
// no-op logger.
func NewResourceTracker(log *zap.Logger) *ResourceTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResourceTracker{
		scopes: make(map[string]*scope),
		log:    log,
	}
}

// CreateScope opens a new empty scope. Opening a scope that already exists
// fails with *DuplicateScopeError — duplicate creation indicates a lifecycle
// bug, so it is never silently merged.
func (t *ResourceTracker) CreateScope(name string) error {
	if _, ok := t.scopes[name]; ok {
		return &DuplicateScopeError{Name: name}
	}
	t.scopes[name] = &scope{}
	return nil
}

// Track registers a disposable under an open scope. It fails with
// *UnknownScopeError if the scope was never created or has been disposed.
func (t *ResourceTracker) Track(scopeName string, d Disposable) error {
	s, ok := t.scopes[scopeName]
	if !ok {
		return &UnknownScopeError{Name: scopeName}
	}
	s.handles = append(s.handles, d)
	return nil
}

// HasScope reports whether the named scope is currently open.
func (t *ResourceTracker) HasScope(name string) bool {
	_, ok := t.scopes[name]
	return ok
}

// DisposeScope disposes every handle in the scope in tracking order, then
// removes the scope. Individual disposer failures are logged and aggregated
// into the returned error so one failing handle cannot block cleanup of the
// rest. Disposing a scope that is not open is a no-op.
func (t *ResourceTracker) DisposeScope(name string) error {
	s, ok := t.scopes[name]
	if !ok {
		return nil
	}
	delete(t.scopes, name)

	var errs []error
	for _, d := range s.handles {
		if err := d.Dispose(); err != nil {
			t.log.Warn("resource disposer failed",
				zap.String("scope", name), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Destroy disposes every remaining scope and clears the tracker. Scopes are
// expected to be independent, so disposal order across scopes is
// indeterminate. Failures are aggregated like DisposeScope's.
func (t *ResourceTracker) Destroy() error {
	var errs []error
	for name := range t.scopes {
		if err := t.DisposeScope(name); err != nil {
			errs = append(errs, err)
		}
	}
	t.scopes = make(map[string]*scope)
	return errors.Join(errs...)
}
