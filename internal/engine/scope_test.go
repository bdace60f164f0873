package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

type fakePiece struct {
	rect    core.RectF
	depth   int
	started int
	ended   int
	dx, dy  float64
}

func (p *fakePiece) Bounds() core.RectF  { return p.rect }
func (p *fakePiece) Depth() int          { return p.depth }
func (p *fakePiece) DragStart()          { p.started++ }
func (p *fakePiece) Drag(dx, dy float64) { p.dx, p.dy = dx, dy }
func (p *fakePiece) DragEnd()            { p.ended++ }

func TestScopeCloseReleasesEverything(t *testing.T) {
	s := NewScope()
	calls := 0

	s.After(100*time.Millisecond, func() { calls++ })
	s.Every(50*time.Millisecond, func() { calls++ })
	s.Tween(TweenSpec{Duration: time.Second, OnUpdate: func(float64) { calls++ }})
	s.OnPointer(func(core.PointerEvent) { calls++ })
	s.OnKey(func(core.Action) { calls++ })

	timers, tweens, listeners := s.Pending()
	if timers != 2 || tweens != 1 || listeners != 2 {
		t.Fatalf("Pending() = %d, %d, %d; expected 2, 1, 2", timers, tweens, listeners)
	}

	s.Close()
	s.Close() // idempotent

	s.Advance(time.Minute)
	s.Dispatch(core.Down(1, 1))
	s.Key(core.ActionConfirm)

	if calls != 0 {
		t.Errorf("callbacks fired after Close: %d", calls)
	}
	timers, tweens, listeners = s.Pending()
	if timers+tweens+listeners != 0 {
		t.Errorf("Pending() after Close = %d, %d, %d; expected zeros", timers, tweens, listeners)
	}

	// Registrations after Close are inert
	s.After(0, func() { calls++ })
	s.OnPointer(func(core.PointerEvent) { calls++ })
	s.Advance(time.Second)
	s.Dispatch(core.Down(1, 1))
	if calls != 0 {
		t.Errorf("registration after Close should be inert, calls = %d", calls)
	}
}

func TestScopeCloseFromCallback(t *testing.T) {
	s := NewScope()
	later := false

	s.After(10*time.Millisecond, func() { s.Close() })
	s.After(20*time.Millisecond, func() { later = true })
	s.Advance(time.Second)

	if later {
		t.Error("timer fired after scope was closed by an earlier callback")
	}
}

func TestScopeOnClick(t *testing.T) {
	s := NewScope()
	clicks := 0
	l := s.OnClick(func() core.RectF { return core.RectF{X: 10, Y: 10, W: 5, H: 3} }, func() { clicks++ })

	s.Dispatch(core.Down(11, 11))
	s.Dispatch(core.Up(11, 11))
	s.Dispatch(core.Down(1, 1))
	if clicks != 1 {
		t.Errorf("clicks = %d, expected 1", clicks)
	}

	l.Remove()
	s.Dispatch(core.Down(11, 11))
	if clicks != 1 {
		t.Errorf("removed listener still called, clicks = %d", clicks)
	}
}

func TestScopeDragPicksTopmost(t *testing.T) {
	s := NewScope()
	low := &fakePiece{rect: core.RectF{X: 0, Y: 0, W: 10, H: 10}, depth: 1}
	high := &fakePiece{rect: core.RectF{X: 5, Y: 5, W: 10, H: 10}, depth: 2}
	s.Draggable(low)
	s.Draggable(high)

	s.Dispatch(core.Down(6, 6))
	s.Dispatch(core.Move(9, 8))
	s.Dispatch(core.Up(10, 10))

	if low.started != 0 {
		t.Error("lower piece should not be picked")
	}
	if high.started != 1 || high.ended != 1 {
		t.Errorf("high piece started=%d ended=%d, expected 1, 1", high.started, high.ended)
	}
	if high.dx != 4 || high.dy != 4 {
		t.Errorf("drag delta = (%v, %v), expected (4, 4)", high.dx, high.dy)
	}
}

func TestScopeDragRemovedMidDrag(t *testing.T) {
	s := NewScope()
	p := &fakePiece{rect: core.RectF{X: 0, Y: 0, W: 10, H: 10}}
	l := s.Draggable(p)

	s.Dispatch(core.Down(1, 1))
	l.Remove()
	s.Dispatch(core.Move(3, 3))
	s.Dispatch(core.Up(3, 3))

	if p.ended != 0 || p.dx != 0 {
		t.Errorf("removed drag target received events: ended=%d dx=%v", p.ended, p.dx)
	}
}
