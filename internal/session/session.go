// Package session runs the scene sequence: it owns the one live scene,
// forwards ticks and input to it, and swaps scenes on hand-off.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

var (
	// ErrUnknownScene is returned when no factory is registered for a scene.
	ErrUnknownScene = errors.New("session: unknown scene")
	// ErrStarted is returned by Start on a session that already started.
	ErrStarted = errors.New("session: already started")
	// ErrNotStarted is returned by Advance before Start.
	ErrNotStarted = errors.New("session: not started")
	// ErrClosed is returned by operations after Teardown.
	ErrClosed = errors.New("session: closed")
	// ErrBackward is returned by Advance to a scene at or before the current one.
	ErrBackward = errors.New("session: cannot advance backwards")
)

// Factory creates scenes by identifier. *registry.Registry implements it.
type Factory interface {
	Create(id scene.ID) (scene.Scene, error)
}

// Options configures a session.
type Options struct {
	Runtime core.RuntimeConfig
	Tuning  config.Config
	Scenes  Factory          // Defaults to registry.Default
	Answers scene.AnswerSink // Defaults to dropping answers
	Logger  *log.Logger      // Defaults to discarding
}

// Session runs one playthrough. It is safe for concurrent use: the
// platform loop drives it while a host may tear it down from elsewhere.
// Scene callbacks run with the session locked.
type Session struct {
	id   uuid.UUID
	opts Options
	rng  *rand.Rand
	log  *log.Logger

	mu sync.Mutex

	current scene.ID
	active  scene.Scene
	scope   *engine.Scope
	started bool
	closed  bool

	// Hand-off requested during a dispatch; applied once it returns.
	dispatching bool
	pending     *scene.ID
	err         error

	visited []scene.ID
}

// New creates an idle session.
func New(opts Options) *Session {
	if opts.Scenes == nil {
		opts.Scenes = registry.Default
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.New()
	return &Session{
		id:   id,
		opts: opts,
		rng:  core.NewRand(opts.Runtime.Seed),
		log:  logger.With("session", id.String()[:8]),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Start activates the first scene.
func (s *Session) Start(id scene.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrStarted
	}
	s.started = true
	if err := s.activate(id); err != nil {
		s.started = false
		return err
	}
	return nil
}

// Advance exits the current scene, releasing everything it registered, and
// enters id. Scenes only move forward.
func (s *Session) Advance(id scene.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advance(id)
}

func (s *Session) advance(id scene.ID) error {
	if s.closed {
		return ErrClosed
	}
	if !s.started {
		return ErrNotStarted
	}
	if id <= s.current {
		return fmt.Errorf("%w: %v -> %v", ErrBackward, s.current, id)
	}
	return s.activate(id)
}

// activate creates id first so a failed lookup leaves the current scene running.
func (s *Session) activate(id scene.ID) error {
	next, err := s.opts.Scenes.Create(id)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrUnknownScene, id, err)
	}

	s.deactivate()

	s.current = id
	s.active = next
	s.scope = engine.NewScope()
	s.visited = append(s.visited, id)

	ctx := scene.NewContext(s.scope, s.opts.Runtime, s.opts.Tuning, s.rng,
		s.log.With("scene", id.String()), s.opts.Answers, s.requestHandoff)

	s.log.Info("scene enter", "scene", id)
	s.dispatch(func() { next.Enter(ctx) })
	return nil
}

func (s *Session) deactivate() {
	if s.active == nil {
		return
	}
	s.log.Info("scene exit", "scene", s.current)
	s.active.Exit()
	s.scope.Close()
	s.active = nil
	s.scope = nil
}

// requestHandoff is the scene's hand-off hook. Scenes only call it from
// their callbacks, which run with s.mu held. Outside a dispatch it advances
// immediately.
func (s *Session) requestHandoff(next scene.ID) {
	if s.dispatching {
		if s.pending == nil {
			s.pending = &next
		}
		return
	}
	if err := s.advance(next); err != nil && s.err == nil {
		s.err = err
	}
}

// dispatch runs fn against the active scene and then applies any hand-off
// it requested.
func (s *Session) dispatch(fn func()) {
	if s.dispatching {
		fn()
		return
	}
	s.dispatching = true
	fn()
	s.dispatching = false

	if s.pending == nil {
		return
	}
	next := *s.pending
	s.pending = nil
	if s.closed {
		return
	}
	if err := s.advance(next); err != nil && s.err == nil {
		s.log.Error("hand-off failed", "to", next, "err", err)
		s.err = err
	}
}

// Tick advances the active scene's timers and tweens, then its simulation.
// It returns a hand-off error, if one occurred.
func (s *Session) Tick(dt time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return s.err
	}
	active, scope := s.active, s.scope
	s.dispatch(func() {
		scope.Advance(dt)
		if !scope.Closed() {
			active.Tick(dt)
		}
	})
	return s.err
}

// Pointer delivers a pointer event to the active scene.
func (s *Session) Pointer(ev core.PointerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return s.err
	}
	scope := s.scope
	s.dispatch(func() { scope.Dispatch(ev) })
	return s.err
}

// Key delivers a keyboard action to the active scene.
func (s *Session) Key(a core.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return s.err
	}
	scope := s.scope
	s.dispatch(func() { scope.Key(a) })
	return s.err
}

// Render draws the active scene.
func (s *Session) Render(dst *core.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return
	}
	s.active.Render(dst)
}

// Resize changes the playfield used by scenes entered from now on.
func (s *Session) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w > 0 && h > 0 {
		s.opts.Runtime.ScreenW, s.opts.Runtime.ScreenH = w, h
	}
}

// Teardown exits the active scene and closes the session. Idempotent.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.deactivate()
	s.pending = nil
	s.closed = true
	s.log.Info("session closed", "scenes", len(s.visited))
}

// Current returns the active scene, if any.
func (s *Session) Current() (scene.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return 0, false
	}
	return s.current, true
}

// Closed reports whether Teardown has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Err returns the first hand-off error.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Visited returns the scenes entered so far, in order.
func (s *Session) Visited() []scene.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]scene.ID(nil), s.visited...)
}
