package gamebyte

import (
	"fmt"

	"go.uber.org/zap"
)

// App is the application core. It wires the service container, scene
// manager, and resource tracker together, boots providers in two phases, and
// owns the event surface providers coordinate through.
//
// Typical bootstrap:
//
//	app := gamebyte.New(gamebyte.WithConfig(cfg))
//	app.RegisterProvider(&gamebyte.AssetsProvider{})
//	app.RegisterProvider(&menuProvider{})
//	if err := app.Initialize(); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Start(); err != nil {
//		log.Fatal(err)
//	}
type App struct {
	cfg *Config
	log *zap.Logger

	container *Container
	scenes    *SceneManager
	resources *ResourceTracker
	events    *EventBus

	providers []Provider
	eager     []Provider
	// deferred maps each provided key to its registered-but-unbooted
	// provider; entries are removed once the provider boots.
	deferred map[string]Provider
	booting  map[Provider]bool

	initialized bool
	destroyed   bool
}

// Option configures an App at construction time.
type Option func(*App)

// WithConfig sets the application configuration. Defaults to DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(a *App) {
		if cfg != nil {
			a.cfg = cfg
		}
	}
}

// WithLogger sets the application logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an application core with its container, scene manager,
// resource tracker, and event bus wired together. Scene scopes are managed
// automatically: activating a scene opens its "scene:<id>" scope and
// deactivating it disposes the scope.
func New(opts ...Option) *App {
	app := &App{
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		deferred: make(map[string]Provider),
		booting:  make(map[Provider]bool),
	}
	for _, opt := range opts {
		opt(app)
	}

	app.events = NewEventBus()
	app.container = NewContainer(app.log)
	app.resources = NewResourceTracker(app.log)
	app.scenes = NewSceneManager(app.events, app.log)

	app.container.SetResolveHook(app.bootDeferred)
	app.container.Instance("app", app)
	app.container.Instance("config", app.cfg)

	app.events.On(EventSceneActivated, func(id string) {
		if err := app.resources.CreateScope(SceneScope(id)); err != nil {
			app.log.Warn("scene scope already open", zap.String("scene", id))
		}
	})
	app.events.On(EventSceneDeactivated, func(id string) {
		// Disposer failures are logged and aggregated by the tracker.
		_ = app.resources.DisposeScope(SceneScope(id))
	})

	return app
}

// Container returns the service container.
func (a *App) Container() *Container { return a.container }

// Scenes returns the scene manager.
func (a *App) Scenes() *SceneManager { return a.scenes }

// Resources returns the resource tracker.
func (a *App) Resources() *ResourceTracker { return a.resources }

// Events returns the application event bus.
func (a *App) Events() *EventBus { return a.events }

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger { return a.log }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.cfg }

// RegisterProvider appends a provider to the ordered provider list. Call
// before Initialize.
func (a *App) RegisterProvider(p Provider) {
	a.providers = append(a.providers, p)
}

// Initialize runs the two-phase provider boot: every provider's Register in
// registration order, then every eager provider's Boot in the same order.
// Deferred providers register their bindings like everyone else — factories
// are lazy, so registration is cheap — but their Boot waits until the first
// resolution of a key they provide.
//
// The first error aborts initialization and is returned; bindings already
// made stay in the container (no rollback).
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	for _, p := range a.providers {
		if err := p.Register(a); err != nil {
			return fmt.Errorf("gamebyte: registering provider %T: %w", p, err)
		}
		if p.IsDeferred() {
			for _, key := range p.Provides() {
				a.deferred[key] = p
			}
			continue
		}
		a.eager = append(a.eager, p)
	}

	for _, p := range a.eager {
		if err := p.Boot(a); err != nil {
			return fmt.Errorf("gamebyte: booting provider %T: %w", p, err)
		}
	}

	a.initialized = true
	a.log.Info("application initialized",
		zap.Int("providers", len(a.providers)),
		zap.Int("deferred", len(a.deferred)))
	return nil
}

// bootDeferred is the container's resolve hook: when the key belongs to a
// deferred provider that has not booted yet, the provider boots before the
// resolution proceeds. A failed boot leaves the provider deferred, so the
// next resolution retries it and surfaces the same root cause.
//
// The booting guard lets a provider's own Boot resolve keys it provides
// without recursing back into itself.
func (a *App) bootDeferred(key string) error {
	p, ok := a.deferred[key]
	if !ok || a.booting[p] {
		return nil
	}
	a.booting[p] = true
	err := p.Boot(a)
	delete(a.booting, p)
	if err != nil {
		return fmt.Errorf("gamebyte: booting provider %T: %w", p, err)
	}
	for _, k := range p.Provides() {
		delete(a.deferred, k)
	}
	return nil
}

// Start initializes the application if needed, then enters the per-frame
// update/render loop. It blocks until the window closes or the loop fails.
func (a *App) Start() error {
	if !a.initialized {
		if err := a.Initialize(); err != nil {
			return err
		}
	}
	return runGame(a)
}

// Destroy emits the destroyed event so providers can tear down their owned
// services, sweeps every remaining resource scope, and tears down the scene
// manager and container. Safe to call more than once.
func (a *App) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true

	a.events.Emit(EventDestroyed, "")
	// The active scene's scope was just disposed by its deactivate handler
	// if providers switched away; the sweep covers everything left.
	a.scenes.destroyAll()
	_ = a.resources.Destroy()
	a.container.Flush()
	a.log.Info("application destroyed")
}
