package gamebyte

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is the capability set a game screen implements. The manager drives
// the lifecycle: Initialize is called once, lazily, before the first
// activation; Activate/Deactivate are called on every transition in and out;
// Destroy is called only when the scene is removed from the manager.
type Scene interface {
	ID() string
	Name() string

	// Initialize performs one-time setup (asset loads, layout). It is
	// awaited before the scene's first activation; a failure aborts the
	// switch and leaves no scene active.
	Initialize(ctx context.Context) error

	Activate()
	Deactivate()

	// Update advances the scene by dt seconds. Called only while active.
	Update(dt float64)
	// Render draws the scene. Called only while active.
	Render(screen *ebiten.Image)

	// Destroy releases everything the scene owns. The scene is never used
	// again afterwards.
	Destroy()
}

// BaseScene is an embeddable Scene with stored id/name and no-op lifecycle
// methods. Embed it and override what the scene needs.
type BaseScene struct {
	SceneID   string
	SceneName string
}

func (s *BaseScene) ID() string                       { return s.SceneID }
func (s *BaseScene) Name() string                     { return s.SceneName }
func (s *BaseScene) Initialize(context.Context) error { return nil }
func (s *BaseScene) Activate()                        {}
func (s *BaseScene) Deactivate()                      {}
func (s *BaseScene) Update(float64)                   {}
func (s *BaseScene) Render(*ebiten.Image)             {}
func (s *BaseScene) Destroy()                         {}

// sceneState tracks where a registered scene sits in its lifecycle.
type sceneState uint8

const (
	sceneRegistered  sceneState = iota // added, never initialized
	sceneInitialized                   // initialized, never activated
	sceneActive                        // the single active scene
	sceneInactive                      // previously active
)

type sceneEntry struct {
	scene Scene
	state sceneState
}

// SceneManager owns the set of registered scenes and enforces the
// single-active-scene invariant: at most one scene is active at any time,
// and a scene's Update never interleaves with an in-flight transition's
// Activate/Deactivate calls.
//
// SwitchTo blocks for the length of the transition effect, so issue it from
// its own goroutine when calling out of a scene's Update — never
// synchronously from inside Update, which would deadlock on the frame lock.
type SceneManager struct {
	// mu guards the registry, the active entry, the in-flight transition
	// overlay, and frame forwarding.
	mu     sync.Mutex
	scenes map[string]*sceneEntry
	active *sceneEntry

	// transition is the overlay currently drawn over frames, nil when idle.
	transition Transition

	// switchMu guards the single-flight queue. Concurrent SwitchTo calls
	// queue behind the in-flight one and run in call order.
	switchMu   sync.Mutex
	switchBusy bool
	waiters    []chan struct{}

	effects map[string]EffectFunc
	events  *EventBus
	log     *zap.Logger
}

// NewSceneManager creates a manager emitting on the given bus. A nil bus or
// logger falls back to a private bus / no-op logger.
func NewSceneManager(events *EventBus, log *zap.Logger) *SceneManager {
	if events == nil {
		events = NewEventBus()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneManager{
		scenes:  make(map[string]*sceneEntry),
		effects: builtinEffects(),
		events:  events,
		log:     log,
	}
}

// Add registers a scene. It fails with *DuplicateSceneIDError if the id is
// already registered.
func (m *SceneManager) Add(s Scene) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scenes[s.ID()]; ok {
		return &DuplicateSceneIDError{ID: s.ID()}
	}
	m.scenes[s.ID()] = &sceneEntry{scene: s}
	return nil
}

// Remove unregisters a scene and calls its Destroy. The active scene cannot
// be removed — switch away first. Fails with *SceneNotFoundError if the id
// is unregistered or currently active.
func (m *SceneManager) Remove(id string) error {
	m.mu.Lock()
	entry, ok := m.scenes[id]
	if !ok || entry == m.active {
		m.mu.Unlock()
		return &SceneNotFoundError{ID: id}
	}
	delete(m.scenes, id)
	m.mu.Unlock()

	entry.scene.Destroy()
	return nil
}

// RegisterEffect adds (or replaces) a named transition effect. Safe to call
// while a switch is in flight.
func (m *SceneManager) RegisterEffect(name string, fn EffectFunc) {
	m.mu.Lock()
	m.effects[name] = fn
	m.mu.Unlock()
}

// ActiveID returns the id of the active scene, or "" if none is active.
func (m *SceneManager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return ""
	}
	return m.active.scene.ID()
}

// IsActive reports whether the scene with the given id is the active scene.
func (m *SceneManager) IsActive(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil && m.active.scene.ID() == id
}

// SwitchTo deactivates the current scene (if any) and activates the scene
// with the given id, optionally running a timed transition effect in
// between. The target's Initialize is awaited before its first activation;
// an initialization failure aborts the switch, leaves no scene active, and
// is returned to the caller.
//
// Switches are single-flight: a call issued while another switch is in
// flight queues behind it and runs once the prior switch completes, in call
// order. A queued call never cancels the in-flight one. Switching to the
// already-active scene is an immediate no-op.
func (m *SceneManager) SwitchTo(ctx context.Context, id string, opts ...TransitionOptions) error {
	m.acquireSwitch()
	defer m.releaseSwitch()

	m.mu.Lock()
	target, ok := m.scenes[id]
	if !ok {
		m.mu.Unlock()
		return &SceneNotFoundError{ID: id}
	}
	if target == m.active {
		m.mu.Unlock()
		return nil
	}

	prev := m.active
	if prev != nil {
		prev.scene.Deactivate()
		prev.state = sceneInactive
		m.active = nil
	}
	m.mu.Unlock()

	if prev != nil {
		m.events.Emit(EventSceneDeactivated, prev.scene.ID())
	}

	if target.state == sceneRegistered {
		if err := target.scene.Initialize(ctx); err != nil {
			return fmt.Errorf("gamebyte: initializing scene %q: %w", id, err)
		}
		m.mu.Lock()
		target.state = sceneInitialized
		m.mu.Unlock()
	}

	if len(opts) > 0 {
		m.runTransition(opts[0])
	}

	m.mu.Lock()
	target.scene.Activate()
	target.state = sceneActive
	m.active = target
	m.mu.Unlock()

	m.events.Emit(EventSceneActivated, id)
	return nil
}

// runTransition installs the effect overlay and blocks for its duration.
// Unknown effect names fall back to an instantaneous cut. Transitions are
// not cancelable mid-flight.
func (m *SceneManager) runTransition(opts TransitionOptions) {
	if opts.Duration <= 0 {
		return
	}
	m.mu.Lock()
	fn, ok := m.effects[opts.Type]
	m.mu.Unlock()
	if !ok {
		m.log.Warn("unknown transition effect, falling back to cut",
			zap.String("type", opts.Type))
		return
	}
	t := fn(opts.Duration)
	if t == nil {
		return
	}

	m.mu.Lock()
	m.transition = t
	m.mu.Unlock()

	timer := time.NewTimer(opts.Duration)
	<-timer.C

	m.mu.Lock()
	m.transition = nil
	m.mu.Unlock()
}

// Update forwards dt to the active scene and advances any in-flight
// transition overlay. No-op when no scene is active.
func (m *SceneManager) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.transition != nil {
		m.transition.Update(dt)
	}
	if m.active != nil {
		m.active.scene.Update(dt)
	}
}

// Render forwards the screen to the active scene, then draws any in-flight
// transition overlay on top. No-op when no scene is active.
func (m *SceneManager) Render(screen *ebiten.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		m.active.scene.Render(screen)
	}
	if m.transition != nil {
		m.transition.Draw(screen)
	}
}

// destroyAll deactivates the active scene and destroys every registered
// scene. Called from App.Destroy.
func (m *SceneManager) destroyAll() {
	m.mu.Lock()
	entries := make([]*sceneEntry, 0, len(m.scenes))
	for _, e := range m.scenes {
		entries = append(entries, e)
	}
	active := m.active
	m.scenes = make(map[string]*sceneEntry)
	m.active = nil
	m.mu.Unlock()

	if active != nil {
		active.scene.Deactivate()
		m.events.Emit(EventSceneDeactivated, active.scene.ID())
	}
	for _, e := range entries {
		e.scene.Destroy()
	}
}

// acquireSwitch claims the single switch slot, queueing FIFO behind any
// in-flight switch. A plain mutex is not enough here: mutex wakeup order is
// unspecified, and queued switches must run in call order.
func (m *SceneManager) acquireSwitch() {
	m.switchMu.Lock()
	if !m.switchBusy {
		m.switchBusy = true
		m.switchMu.Unlock()
		return
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.switchMu.Unlock()
	<-ch
}

// releaseSwitch hands the slot to the oldest waiter, or frees it.
func (m *SceneManager) releaseSwitch() {
	m.switchMu.Lock()
	if len(m.waiters) > 0 {
		ch := m.waiters[0]
		m.waiters = m.waiters[1:]
		m.switchMu.Unlock()
		close(ch)
		return
	}
	m.switchBusy = false
	m.switchMu.Unlock()
}
