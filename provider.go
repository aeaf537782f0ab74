package gamebyte

// Provider is the unit of framework composition. Concrete providers bind
// services into the container during Register and wire them up during Boot.
//
// Register must be pure registration — it binds factories and must not
// resolve other services, because they may not be registered yet. Boot runs
// only after every provider's Register has completed, so it is safe to
// resolve any binding and to subscribe to application events there.
//
// An error from Register or Boot aborts application startup and is surfaced
// to the caller. Bindings made before the failure are not rolled back.
type Provider interface {
	Register(app *App) error
	Boot(app *App) error

	// Provides declares the container keys this provider supplies. Required
	// for deferred providers; eager providers may return nil.
	Provides() []string

	// IsDeferred reports whether registration and boot should be postponed
	// until one of the Provides keys is first resolved.
	IsDeferred() bool
}

// BaseProvider is an embeddable struct supplying no-op Boot, Provides, and
// IsDeferred. Embed it and override only what the provider needs.
//
//	type AudioProvider struct{ gamebyte.BaseProvider }
//
//	func (p *AudioProvider) Register(app *gamebyte.App) error {
//		app.Container().Singleton("audio", func(c *gamebyte.Container) (any, error) {
//			return newMixer(), nil
//		})
//		return nil
//	}
type BaseProvider struct{}

func (BaseProvider) Boot(*App) error    { return nil }
func (BaseProvider) Provides() []string { return nil }
func (BaseProvider) IsDeferred() bool   { return false }
