// Package gamebyte is the application lifecycle core of a browser game
// framework built on [Ebitengine].
//
// It provides the service container, provider boot sequencing, scene
// management with async transitions, and scene-scoped resource disposal that
// every non-trivial game needs before the first sprite is drawn.
//
// # Quick start
//
// Build an [App], register providers and scenes, then start the loop:
//
//	app := gamebyte.New(gamebyte.WithConfig(cfg), gamebyte.WithLogger(log))
//	app.RegisterProvider(&gamebyte.AssetsProvider{})
//
//	if err := app.Scenes().Add(newMenuScene()); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Initialize(); err != nil {
//		log.Fatal(err)
//	}
//	go app.Scenes().SwitchTo(context.Background(), "menu")
//	if err := app.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// # Services and providers
//
// The [Container] maps string keys to factories with singleton or transient
// lifetimes. Providers bind services during Register and wire them up during
// Boot; Boot runs only after every provider has registered, so cross-provider
// dependencies resolve regardless of registration order. Deferred providers
// postpone both phases until one of their keys is first resolved.
//
// # Scenes and transitions
//
// The [SceneManager] holds the registered [Scene] set and guarantees at most
// one active scene. Switches run deactivate → lazy initialize → transition
// effect → activate, serialized first-come-first-served. The built-in "fade"
// effect dips to black using [gween]; unknown effect names degrade to a cut.
//
// # Scoped resources
//
// The [ResourceTracker] ties [Disposable] handles to named scopes. The core
// opens a "scene:<id>" scope when a scene activates and disposes it on
// deactivation, so per-scene resources clean themselves up. Providers can
// react to [EventSceneActivated], [EventSceneDeactivated], and
// [EventDestroyed] to manage their own cross-cutting resources.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package gamebyte
