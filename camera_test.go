package gamebyte

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) {
		t.Error("edge points count as inside")
	}
	if !r.Contains(20, 20) {
		t.Error("interior point should be inside")
	}
	if r.Contains(31, 20) {
		t.Error("point past the right edge should be outside")
	}
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	if c.Zoom != 1.0 {
		t.Errorf("Zoom = %v, want 1.0", c.Zoom)
	}
}

func TestCameraViewCentersViewport(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.X, c.Y = 100, 50

	// The camera position should land on the viewport center.
	sx, sy := c.WorldToScreen(100, 50)
	if math.Abs(sx-320) > 1e-9 || math.Abs(sy-240) > 1e-9 {
		t.Errorf("camera center maps to (%v, %v), want (320, 240)", sx, sy)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.X, c.Y = 37, -12
	c.Zoom = 2.5
	c.Rotation = 0.3

	wx, wy := 123.0, 456.0
	sx, sy := c.WorldToScreen(wx, wy)
	bx, by := c.ScreenToWorld(sx, sy)
	if math.Abs(bx-wx) > 1e-6 || math.Abs(by-wy) > 1e-6 {
		t.Errorf("round trip = (%v, %v), want (%v, %v)", bx, by, wx, wy)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.Follow(func() (float64, float64) { return 100, 0 }, 0.5)

	c.Update(1.0 / 60)
	if c.X != 50 {
		t.Errorf("X after one update = %v, want 50 (half way)", c.X)
	}
	c.Update(1.0 / 60)
	if c.X != 75 {
		t.Errorf("X after two updates = %v, want 75", c.X)
	}

	c.Unfollow()
	c.Update(1.0 / 60)
	if c.X != 75 {
		t.Error("Unfollow() should stop tracking")
	}
}

func TestCameraScrollToReachesTarget(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.ScrollTo(200, -80, 0.5, ease.Linear)

	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60)
	}
	if math.Abs(c.X-200) > 0.5 || math.Abs(c.Y+80) > 0.5 {
		t.Errorf("camera at (%v, %v), want (200, -80)", c.X, c.Y)
	}
}

func TestCameraVisibleBoundsZoom(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.Zoom = 2.0

	b := c.VisibleBounds()
	if math.Abs(b.Width-320) > 1e-6 || math.Abs(b.Height-240) > 1e-6 {
		t.Errorf("visible = %vx%v, want 320x240 at 2x zoom", b.Width, b.Height)
	}
}

func TestCameraShakeSettles(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	c.Shake(50*time.Millisecond, 10)

	for i := 0; i < 30; i++ { // 0.5s of frames, well past the shake
		c.Update(1.0 / 60)
	}
	if c.shakeX != 0 || c.shakeY != 0 {
		t.Errorf("shake offset = (%v, %v), want settled at origin", c.shakeX, c.shakeY)
	}
}
