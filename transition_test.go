package gamebyte

import (
	"testing"
	"time"
)

func TestBuiltinEffects(t *testing.T) {
	effects := builtinEffects()
	if _, ok := effects["fade"]; !ok {
		t.Error("fade should be a built-in effect")
	}
	cut, ok := effects["cut"]
	if !ok {
		t.Fatal("cut should be a built-in effect")
	}
	if cut(time.Second) != nil {
		t.Error("cut should be instantaneous (nil transition)")
	}
}

func TestFadeAlphaEnvelope(t *testing.T) {
	f := newFade(time.Second).(*fade)

	f.Update(0.25)
	quarter := f.alpha
	if quarter <= 0 {
		t.Errorf("alpha after 0.25s = %v, want > 0", quarter)
	}

	f.Update(0.25) // total 0.5s: end of the fade-in half
	peak := f.alpha
	if peak < quarter {
		t.Errorf("alpha should rise during the first half: %v -> %v", quarter, peak)
	}

	f.Update(0.25) // into the fade-out half
	if f.alpha > peak {
		t.Errorf("alpha should fall during the second half: peak %v, now %v", peak, f.alpha)
	}

	f.Update(1.0) // well past the end
	if f.alpha != 0 {
		t.Errorf("alpha after completion = %v, want 0", f.alpha)
	}
}

func TestFadeDrawNilScreen(t *testing.T) {
	f := newFade(time.Second).(*fade)
	f.Update(0.5)
	f.Draw(nil) // should not panic
}
