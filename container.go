package gamebyte

import (
	"fmt"

	"go.uber.org/zap"
)

// Factory builds a concrete value from the container. Factories may call
// Make recursively to resolve their own dependencies (constructor injection).
type Factory func(c *Container) (any, error)

// binding holds a registered factory, its lifetime, and the cached singleton
// instance once resolved.
type binding struct {
	factory   Factory
	singleton bool
	instance  any
	resolved  bool
}

// Container is the service container: it maps string keys to factories and
// resolves them on demand. Singleton bindings are instantiated at most once;
// transient bindings run their factory on every Make.
//
// The container is single-threaded, like the rest of the framework — it is
// driven from the game loop and provider boot, never concurrently.
type Container struct {
	bindings map[string]*binding

	// resolving is the stack of keys currently being built, used to detect
	// circular resolution and to produce a useful error chain.
	resolving []string
	inFlight  map[string]bool

	// onResolve, when set, runs at the start of every Make, before the
	// binding lookup. The application core uses it to boot deferred
	// providers on first use of a key they provide.
	onResolve func(key string) error

	log *zap.Logger
}

// NewContainer creates an empty container. A nil logger falls back to a no-op
// logger.
func NewContainer(log *zap.Logger) *Container {
	if log == nil {
		log = zap.NewNop()
	}
	return &Container{
		bindings: make(map[string]*binding),
		inFlight: make(map[string]bool),
		log:      log,
	}
}

// Bind registers a transient factory: Make runs the factory on every call.
// Rebinding an existing key replaces the prior binding and logs a warning.
func (c *Container) Bind(key string, factory Factory) {
	c.bind(key, factory, false)
}

// Singleton registers a factory whose result is cached after the first Make.
func (c *Container) Singleton(key string, factory Factory) {
	c.bind(key, factory, true)
}

// Instance registers a pre-built value as an already-resolved singleton.
func (c *Container) Instance(key string, value any) {
	if _, ok := c.bindings[key]; ok {
		c.log.Warn("container: rebinding existing key", zap.String("key", key))
	}
	c.bindings[key] = &binding{singleton: true, instance: value, resolved: true}
}

func (c *Container) bind(key string, factory Factory, singleton bool) {
	if _, ok := c.bindings[key]; ok {
		c.log.Warn("container: rebinding existing key", zap.String("key", key))
	}
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Bound reports whether key has a binding, without triggering instantiation.
func (c *Container) Bound(key string) bool {
	_, ok := c.bindings[key]
	return ok
}

// Make resolves the value bound to key. For singletons the cached instance is
// returned after the first resolution; transients rebuild every call.
//
// Make fails with *UnresolvedBindingError when the key is unbound and with
// *CircularResolutionError when a factory transitively requests its own key.
func (c *Container) Make(key string) (any, error) {
	if c.onResolve != nil {
		if err := c.onResolve(key); err != nil {
			return nil, err
		}
	}

	b, ok := c.bindings[key]
	if !ok {
		return nil, &UnresolvedBindingError{Key: key}
	}

	if b.singleton && b.resolved {
		return b.instance, nil
	}

	if c.inFlight[key] {
		stack := make([]string, len(c.resolving), len(c.resolving)+1)
		copy(stack, c.resolving)
		return nil, &CircularResolutionError{Stack: append(stack, key)}
	}

	c.inFlight[key] = true
	c.resolving = append(c.resolving, key)
	value, err := b.factory(c)
	c.resolving = c.resolving[:len(c.resolving)-1]
	delete(c.inFlight, key)

	if err != nil {
		return nil, fmt.Errorf("gamebyte: making %q: %w", key, err)
	}

	if b.singleton {
		b.instance = value
		b.resolved = true
	}
	return value, nil
}

// SetResolveHook installs a hook that runs before every resolution. An error
// from the hook fails the Make. Passing nil removes the hook.
func (c *Container) SetResolveHook(fn func(key string) error) {
	c.onResolve = fn
}

// Flush resets the container, dropping every binding and cached instance.
func (c *Container) Flush() {
	c.bindings = make(map[string]*binding)
	c.resolving = nil
	c.inFlight = make(map[string]bool)
}

// Keys returns all bound keys, for debugging. Order is unspecified.
func (c *Container) Keys() []string {
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	return out
}

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	assets, err := gamebyte.Resolve[*gamebyte.Assets](app.Container(), "assets")
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	value, err := c.Make(key)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("gamebyte: resolve %q: have %T, want %T", key, value, zero)
	}
	return typed, nil
}
