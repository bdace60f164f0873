// Package core provides fundamental types and utilities for the scene platform.
// It contains no external dependencies (especially no Bubble Tea) to keep scene
// logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned by Normalize for a zero-length vector.
var ErrDivideByZero = errors.New("core: cannot normalize zero vector")

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is a rectangle in world units. Scenes keep sub-cell positions in
// RectF and only round to Rect when drawing.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// CenteredRectF returns the rectangle of size w x h centered on (cx, cy).
func CenteredRectF(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Area returns W*H, or 0 for degenerate rectangles.
func (r RectF) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether (x, y) lies inside the rectangle (right/bottom exclusive).
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether the two rectangles share a positive area.
func (r RectF) Intersects(other RectF) bool {
	return r.Intersection(other).Area() > 0
}

// Intersection returns the overlapping region. Width or height is zero or
// negative when the rectangles do not overlap.
func (r RectF) Intersection(other RectF) RectF {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	return RectF{
		X: x,
		Y: y,
		W: math.Min(r.Right(), other.Right()) - x,
		H: math.Min(r.Bottom(), other.Bottom()) - y,
	}
}

// Cells rounds the rectangle to screen cells.
func (r RectF) Cells() Rect {
	return NewRect(int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H)))
}

// OverlapPercent returns how much of moved lies over target, in [0, 1].
// The denominator is the area of moved, not the union.
func OverlapPercent(moved, target RectF) float64 {
	area := moved.Area()
	if area == 0 {
		return 0
	}
	inter := moved.Intersection(target)
	if inter.W <= 0 || inter.H <= 0 {
		return 0
	}
	return ClampF(inter.W*inter.H/area, 0, 1)
}

// Normalize returns the unit vector pointing along (dx, dy).
func Normalize(dx, dy float64) (float64, float64, error) {
	if dx == 0 && dy == 0 {
		return 0, 0, ErrDivideByZero
	}
	length := math.Hypot(dx, dy)
	return dx / length, dy / length, nil
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
