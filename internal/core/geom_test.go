package core

import (
	"errors"
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestOverlapPercent(t *testing.T) {
	tests := []struct {
		name          string
		moved, target RectF
		expected      float64
	}{
		{
			name:     "disjoint",
			moved:    RectF{X: 0, Y: 0, W: 10, H: 10},
			target:   RectF{X: 20, Y: 0, W: 10, H: 10},
			expected: 0,
		},
		{
			name:     "touching edges",
			moved:    RectF{X: 0, Y: 0, W: 10, H: 10},
			target:   RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: 0,
		},
		{
			name:     "contained",
			moved:    RectF{X: 2, Y: 2, W: 4, H: 4},
			target:   RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: 1,
		},
		{
			name:     "identical",
			moved:    RectF{X: 3, Y: 3, W: 6, H: 4},
			target:   RectF{X: 3, Y: 3, W: 6, H: 4},
			expected: 1,
		},
		{
			name:     "half horizontal",
			moved:    RectF{X: 5, Y: 0, W: 10, H: 10},
			target:   RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: 0.5,
		},
		{
			name:     "quarter corner",
			moved:    RectF{X: 5, Y: 5, W: 10, H: 10},
			target:   RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: 0.25,
		},
		{
			name:     "denominator is moved area",
			moved:    RectF{X: 0, Y: 0, W: 20, H: 20},
			target:   RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: 0.25,
		},
		{
			name:     "zero area moved",
			moved:    RectF{X: 1, Y: 1, W: 0, H: 5},
			target:   RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := OverlapPercent(tc.moved, tc.target)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("OverlapPercent() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	nx, ny, err := Normalize(3, -4)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	if math.Abs(nx-0.6) > 1e-9 || math.Abs(ny+0.8) > 1e-9 {
		t.Errorf("Normalize(3, -4) = (%v, %v), expected (0.6, -0.8)", nx, ny)
	}
	if l := math.Hypot(nx, ny); math.Abs(l-1) > 1e-9 {
		t.Errorf("Normalize length = %v, expected 1", l)
	}

	_, _, err = Normalize(0, 0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Normalize(0, 0) error = %v, expected ErrDivideByZero", err)
	}
}

func TestRectFIntersection(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 6}
	b := RectF{X: 4, Y: 2, W: 10, H: 10}

	got := a.Intersection(b)
	want := RectF{X: 4, Y: 2, W: 6, H: 4}
	if got != want {
		t.Errorf("Intersection() = %+v, expected %+v", got, want)
	}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("Intersects() should be symmetric and true")
	}

	c := CenteredRectF(5, 5, 4, 2)
	if c.X != 3 || c.Y != 4 {
		t.Errorf("CenteredRectF() = %+v, expected origin (3, 4)", c)
	}
	if cx, cy := c.Center(); cx != 5 || cy != 5 {
		t.Errorf("Center() = (%v, %v), expected (5, 5)", cx, cy)
	}
}
