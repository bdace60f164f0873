package engine

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Body is an arcade physics body positioned by its center.
type Body struct {
	Pos    Vec
	Vel    Vec     // units per second
	Angle  float64 // degrees
	AngVel float64 // degrees per second
	W, H   float64
	Bounce float64 // restitution when hitting world bounds
}

// Rect returns the body's bounding box.
func (b *Body) Rect() core.RectF {
	return core.CenteredRectF(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// SetVelocity sets linear velocity.
func (b *Body) SetVelocity(vx, vy float64) {
	b.Vel = Vec{X: vx, Y: vy}
}

// SetAngularVelocity sets spin in degrees per second.
func (b *Body) SetAngularVelocity(w float64) {
	b.AngVel = w
}

// Halt zeroes both linear and angular velocity.
func (b *Body) Halt() {
	b.SetVelocity(0, 0)
	b.SetAngularVelocity(0)
}

// Place moves the body to (x, y) and halts it.
func (b *Body) Place(x, y float64) {
	b.Pos = Vec{X: x, Y: y}
	b.Angle = 0
	b.Halt()
}

// BoundsHit reports which world edges a body touched during a step.
type BoundsHit struct {
	Up, Down, Left, Right bool
}

// Any reports whether any edge was touched.
func (h BoundsHit) Any() bool {
	return h.Up || h.Down || h.Left || h.Right
}

// World holds global physics parameters.
type World struct {
	Bounds  core.RectF
	Gravity float64 // downward acceleration, units per second squared
}

// Step integrates b over dt. Gravity is applied only when falling is true.
// Bodies are kept inside Bounds and bounce off the edges they hit.
func (w World) Step(b *Body, dt time.Duration, falling bool) BoundsHit {
	secs := dt.Seconds()
	if falling {
		b.Vel.Y += w.Gravity * secs
	}
	b.Pos.X += b.Vel.X * secs
	b.Pos.Y += b.Vel.Y * secs
	b.Angle += b.AngVel * secs

	var hit BoundsHit
	halfW, halfH := b.W/2, b.H/2

	if b.Pos.X-halfW < w.Bounds.X {
		b.Pos.X = w.Bounds.X + halfW
		b.Vel.X = -b.Vel.X * b.Bounce
		hit.Left = true
	} else if b.Pos.X+halfW > w.Bounds.Right() {
		b.Pos.X = w.Bounds.Right() - halfW
		b.Vel.X = -b.Vel.X * b.Bounce
		hit.Right = true
	}

	if b.Pos.Y-halfH < w.Bounds.Y {
		b.Pos.Y = w.Bounds.Y + halfH
		b.Vel.Y = -b.Vel.Y * b.Bounce
		hit.Up = true
	} else if b.Pos.Y+halfH > w.Bounds.Bottom() {
		b.Pos.Y = w.Bounds.Bottom() - halfH
		b.Vel.Y = -b.Vel.Y * b.Bounce
		hit.Down = true
	}

	return hit
}

// Overlaps reports whether two bodies' boxes share area.
func Overlaps(a, b *Body) bool {
	return a.Rect().Intersects(b.Rect())
}
