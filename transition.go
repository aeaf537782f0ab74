package gamebyte

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionOptions selects the timed effect run between deactivating one
// scene and activating the next. An unknown Type falls back to an
// instantaneous cut.
type TransitionOptions struct {
	// Type is the registered effect name, e.g. "fade" or "cut".
	Type string
	// Duration is the total effect length. Zero or negative means cut.
	Duration time.Duration
}

// Transition is a visual bridge drawn over the frame while a scene switch is
// in flight. Update is driven by the game loop's dt; Draw runs after the
// active scene's render.
type Transition interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// EffectFunc constructs a Transition for the given duration. Returning nil
// means the effect is instantaneous (no overlay, no wait).
type EffectFunc func(d time.Duration) Transition

// builtinEffects returns the effect registry every SceneManager starts with.
func builtinEffects() map[string]EffectFunc {
	return map[string]EffectFunc{
		"fade": newFade,
		"cut":  func(time.Duration) Transition { return nil },
	}
}

// fade dips the screen to black and back: alpha tweens 0→1 over the first
// half of the duration and 1→0 over the second half.
type fade struct {
	seq   *gween.Sequence
	alpha float32
}

func newFade(d time.Duration) Transition {
	half := float32(d.Seconds()) / 2
	return &fade{
		seq: gween.NewSequence(
			gween.New(0, 1, half, ease.InQuad),
			gween.New(1, 0, half, ease.OutQuad),
		),
	}
}

// Update advances the fade tween by dt seconds.
func (f *fade) Update(dt float64) {
	value, _, finished := f.seq.Update(float32(dt))
	f.alpha = value
	if finished {
		f.alpha = 0
	}
}

// Draw fills the screen with black at the current tween alpha.
func (f *fade) Draw(screen *ebiten.Image) {
	if screen == nil || f.alpha <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.Scale(0, 0, 0, f.alpha)
	screen.DrawImage(ensureWhitePixel(), op)
}

// whitePixel is a 1x1 white image used to draw solid overlays.
// No sync.Once — the framework is single-threaded.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
