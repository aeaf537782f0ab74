package gamebyte

// Event identifies one of the application core's lifecycle signals. The set
// is closed: providers coordinate through these three events only.
type Event uint8

const (
	EventSceneActivated   Event = iota // fires after a scene's Activate completes
	EventSceneDeactivated              // fires after a scene's Deactivate completes
	EventDestroyed                     // fires once when the application is torn down
)

// String returns the wire-style event name.
func (e Event) String() string {
	switch e {
	case EventSceneActivated:
		return "scene:activated"
	case EventSceneDeactivated:
		return "scene:deactivated"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// EventHandler receives the id of the scene the event concerns. For
// EventDestroyed the id is empty.
type EventHandler func(sceneID string)

// EventBus is the publish/subscribe channel owned by the application core.
// Handlers run synchronously, in subscription order.
type EventBus struct {
	handlers map[Event][]EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[Event][]EventHandler)}
}

// On subscribes a handler to an event. There is no unsubscribe: handlers live
// as long as the application.
func (b *EventBus) On(e Event, h EventHandler) {
	b.handlers[e] = append(b.handlers[e], h)
}

// Emit invokes every handler subscribed to e with the given scene id.
func (b *EventBus) Emit(e Event, sceneID string) {
	for _, h := range b.handlers[e] {
		h(sceneID)
	}
}
