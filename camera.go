package gamebyte

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a light 2D view wrapper: position, zoom, rotation, and viewport,
// folded into an ebiten.GeoM that scenes apply when drawing.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget func() (x, y float64)
	followLerp   float64

	scrollTween *scrollAnim

	shakeLeft      time.Duration
	shakeMagnitude float64
	shakeX, shakeY float64
}

// NewCamera creates a camera centered on the origin with the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1.0, Viewport: viewport}
}

// Follow makes the camera track the position reported by target each frame.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(target func() (x, y float64), lerp float64) {
	c.followTarget = target
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Shake offsets the view randomly within magnitude pixels for the given
// duration. Repeated calls restart the shake.
func (c *Camera) Shake(duration time.Duration, magnitude float64) {
	c.shakeLeft = duration
	c.shakeMagnitude = magnitude
}

// Update advances follow, scroll, and shake. Call once per frame from the
// owning scene's Update.
func (c *Camera) Update(dt float64) {
	if c.followTarget != nil {
		tx, ty := c.followTarget()
		c.X += (tx - c.X) * c.followLerp
		c.Y += (ty - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.shakeLeft > 0 {
		c.shakeLeft -= time.Duration(dt * float64(time.Second))
		c.shakeX = (rand.Float64()*2 - 1) * c.shakeMagnitude
		c.shakeY = (rand.Float64()*2 - 1) * c.shakeMagnitude
		if c.shakeLeft <= 0 {
			c.shakeX, c.shakeY = 0, 0
		}
	}
}

// View returns the world-to-screen transform:
// translate(-X, -Y) then rotate then zoom, centered on the viewport.
func (c *Camera) View() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.X+c.shakeX, -c.Y+c.shakeY)
	g.Rotate(-c.Rotation)
	g.Scale(c.Zoom, c.Zoom)
	g.Translate(c.Viewport.X+c.Viewport.Width/2, c.Viewport.Y+c.Viewport.Height/2)
	return g
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	g := c.View()
	return g.Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates. Returns
// the input unchanged if the view is degenerate (zero zoom).
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	g := c.View()
	if !g.IsInvertible() {
		return sx, sy
	}
	g.Invert()
	return g.Apply(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	g := c.View()
	if !g.IsInvertible() {
		return Rect{}
	}
	g.Invert()

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := g.Apply(vx, vy)
	x1, y1 := g.Apply(vr, vy)
	x2, y2 := g.Apply(vr, vb)
	x3, y3 := g.Apply(vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
