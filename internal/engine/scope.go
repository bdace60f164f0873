package engine

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// DragTarget is an object that can be picked up with the pointer.
// Drag receives the pointer delta since DragStart.
type DragTarget interface {
	Bounds() core.RectF
	Depth() int
	DragStart()
	Drag(dx, dy float64)
	DragEnd()
}

// Listener is a registered input handler. Remove detaches it.
type Listener struct {
	removed bool

	onPointer func(core.PointerEvent)
	onKey     func(core.Action)
	hit       func() core.RectF
	onClick   func()
	drag      DragTarget
}

// Remove detaches the listener; it will not be called again.
func (l *Listener) Remove() {
	l.removed = true
}

// Scope owns every timer, tween and listener a scene registers while it is
// active. Close releases them together so nothing can call back into a scene
// after it has exited.
type Scope struct {
	clock     *Clock
	tweens    []*Tween
	listeners []*Listener
	closed    bool

	dragging   DragTarget
	dragStartX float64
	dragStartY float64
}

// NewScope creates an open scope with its own virtual clock.
func NewScope() *Scope {
	return &Scope{clock: NewClock()}
}

// Now returns the scope's elapsed time.
func (s *Scope) Now() time.Duration {
	return s.clock.Now()
}

// After schedules fn once after d. Returns a stopped timer if the scope is closed.
func (s *Scope) After(d time.Duration, fn func()) *Timer {
	if s.closed {
		return &Timer{stopped: true}
	}
	return s.clock.After(d, fn)
}

// Every schedules fn every d until stopped or the scope closes.
func (s *Scope) Every(d time.Duration, fn func()) *Timer {
	if s.closed {
		return &Timer{stopped: true}
	}
	return s.clock.Every(d, fn)
}

// Tween starts an animation owned by the scope.
func (s *Scope) Tween(spec TweenSpec) *Tween {
	t := newTween(spec)
	if s.closed {
		t.done = true
		return t
	}
	s.tweens = append(s.tweens, t)
	return t
}

// OnPointer registers a raw pointer handler.
func (s *Scope) OnPointer(fn func(core.PointerEvent)) *Listener {
	return s.listen(&Listener{onPointer: fn})
}

// OnKey registers a keyboard action handler.
func (s *Scope) OnKey(fn func(core.Action)) *Listener {
	return s.listen(&Listener{onKey: fn})
}

// OnClick registers fn to run on pointer-down inside hit().
// hit is evaluated at dispatch time so moving objects stay clickable.
func (s *Scope) OnClick(hit func() core.RectF, fn func()) *Listener {
	return s.listen(&Listener{hit: hit, onClick: fn})
}

// Draggable registers a drag target.
func (s *Scope) Draggable(d DragTarget) *Listener {
	return s.listen(&Listener{drag: d})
}

func (s *Scope) listen(l *Listener) *Listener {
	if s.closed {
		l.removed = true
		return l
	}
	s.listeners = append(s.listeners, l)
	return l
}

// Advance moves the scope's clock and tweens forward by dt.
func (s *Scope) Advance(dt time.Duration) {
	if s.closed {
		return
	}
	s.clock.Advance(dt)
	if s.closed {
		return
	}

	running := append([]*Tween(nil), s.tweens...)
	for _, t := range running {
		t.advance(dt)
		if s.closed {
			return
		}
	}

	live := s.tweens[:0]
	for _, t := range s.tweens {
		if !t.done {
			live = append(live, t)
		}
	}
	s.tweens = live
}

// Dispatch delivers a pointer event: drag targets first, then click areas,
// then raw pointer handlers.
func (s *Scope) Dispatch(ev core.PointerEvent) {
	if s.closed {
		return
	}
	s.dispatchDrag(ev)

	for _, l := range s.snapshot() {
		if s.closed {
			return
		}
		if l.removed {
			continue
		}
		if l.onClick != nil && ev.Kind == core.PointerDown && l.hit().Contains(ev.X, ev.Y) {
			l.onClick()
		}
		if l.onPointer != nil {
			l.onPointer(ev)
		}
	}
}

func (s *Scope) dispatchDrag(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		if s.dragging != nil {
			return
		}
		var best DragTarget
		for _, l := range s.listeners {
			if l.removed || l.drag == nil {
				continue
			}
			if !l.drag.Bounds().Contains(ev.X, ev.Y) {
				continue
			}
			if best == nil || l.drag.Depth() >= best.Depth() {
				best = l.drag
			}
		}
		if best != nil {
			s.dragging = best
			s.dragStartX, s.dragStartY = ev.X, ev.Y
			best.DragStart()
		}
	case core.PointerMove:
		if s.dragging != nil && s.dragLive() {
			s.dragging.Drag(ev.X-s.dragStartX, ev.Y-s.dragStartY)
		}
	case core.PointerUp:
		if s.dragging != nil {
			d := s.dragging
			s.dragging = nil
			if s.dragLiveTarget(d) {
				d.Drag(ev.X-s.dragStartX, ev.Y-s.dragStartY)
				d.DragEnd()
			}
		}
	}
}

func (s *Scope) dragLive() bool {
	return s.dragLiveTarget(s.dragging)
}

func (s *Scope) dragLiveTarget(d DragTarget) bool {
	for _, l := range s.listeners {
		if l.drag == d && !l.removed {
			return true
		}
	}
	return false
}

// Key delivers a keyboard action to key handlers.
func (s *Scope) Key(a core.Action) {
	if s.closed {
		return
	}
	for _, l := range s.snapshot() {
		if s.closed {
			return
		}
		if !l.removed && l.onKey != nil {
			l.onKey(a)
		}
	}
}

func (s *Scope) snapshot() []*Listener {
	return append([]*Listener(nil), s.listeners...)
}

// Close cancels every timer and tween and removes every listener. Idempotent.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.clock.StopAll()
	for _, t := range s.tweens {
		t.done = true
	}
	s.tweens = nil
	for _, l := range s.listeners {
		l.removed = true
	}
	s.listeners = nil
	s.dragging = nil
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.closed
}

// Pending returns the number of live timers, tweens and listeners.
func (s *Scope) Pending() (timers, tweens, listeners int) {
	for _, t := range s.tweens {
		if !t.done {
			tweens++
		}
	}
	for _, l := range s.listeners {
		if !l.removed {
			listeners++
		}
	}
	return s.clock.Pending(), tweens, listeners
}
