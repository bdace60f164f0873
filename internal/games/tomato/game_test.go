package tomato

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

const frame = 16 * time.Millisecond

type harness struct {
	g        *Game
	ctx      *scene.Context
	handoffs []scene.ID
}

func newHarness(t *testing.T, tuning config.Config) *harness {
	t.Helper()
	h := &harness{g: New()}
	h.ctx = scene.NewContext(engine.NewScope(), core.DefaultConfig(), tuning,
		core.NewRand(1), nil, nil, func(id scene.ID) { h.handoffs = append(h.handoffs, id) })
	h.g.Enter(h.ctx)
	return h
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.ctx.Scope.Advance(frame)
		h.g.Tick(frame)
	}
}

// parkTarget moves the target to (x, y) and stops it.
func (h *harness) parkTarget(x, y float64) {
	h.g.target.Place(x, y)
	h.g.targetDir = 0
}

func TestInitialLayout(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())

	if h.g.State() != StateReady {
		t.Errorf("state = %v, expected ready", h.g.State())
	}
	if h.g.tomato.Pos != h.g.spawn {
		t.Errorf("tomato at %+v, expected spawn %+v", h.g.tomato.Pos, h.g.spawn)
	}
	if h.g.spawn.X != 40 || h.g.spawn.Y != 21 {
		t.Errorf("spawn = %+v, expected (40, 21)", h.g.spawn)
	}
	if h.g.target.Pos.Y != 4 {
		t.Errorf("target y = %v, expected 4", h.g.target.Pos.Y)
	}
}

func TestTargetOscillatesWithinMargins(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())
	lo, hi := h.g.cfg.Margin, 80-h.g.cfg.Margin

	sawLeft, sawRight := false, false
	for i := 0; i < 600; i++ {
		h.frames(1)
		x := h.g.target.Pos.X
		if x < lo || x > hi {
			t.Fatalf("frame %d: target x = %v outside [%v, %v]", i, x, lo, hi)
		}
		if h.g.targetDir < 0 {
			sawLeft = true
		}
		if sawLeft && h.g.targetDir > 0 {
			sawRight = true
		}
	}
	if !sawLeft || !sawRight {
		t.Errorf("target did not turn around at both margins (left=%v right=%v)", sawLeft, sawRight)
	}
}

func TestThrowOnTomatoIgnored(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())

	h.ctx.Scope.Dispatch(core.Down(h.g.spawn.X, h.g.spawn.Y))

	if h.g.State() != StateReady {
		t.Errorf("state = %v, expected ready after degenerate throw", h.g.State())
	}
	if h.g.tomato.Vel != (engine.Vec{}) {
		t.Errorf("velocity = %+v, expected zero", h.g.tomato.Vel)
	}
}

func TestThrowSetsVelocity(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())
	sx, sy := h.g.spawn.X, h.g.spawn.Y

	// 3-4-5 triangle up and to the right.
	h.ctx.Scope.Dispatch(core.Down(sx+3, sy-4))

	if h.g.State() != StateInFlight {
		t.Fatalf("state = %v, expected in_flight", h.g.State())
	}
	v := h.g.tomato.Vel
	if math.Abs(v.X-0.6*40) > 1e-9 || math.Abs(v.Y+0.8*40) > 1e-9 {
		t.Errorf("velocity = %+v, expected (24, -32)", v)
	}
	if h.g.tomato.AngVel != 600 {
		t.Errorf("angular velocity = %v, expected 600", h.g.tomato.AngVel)
	}

	// A second click while in flight does nothing.
	h.ctx.Scope.Dispatch(core.Down(0, 0))
	if h.g.tomato.Vel != v {
		t.Error("throw while in flight changed velocity")
	}
}

func TestMissResetsWithoutScoring(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())
	h.parkTarget(10, 4) // Out of the way.

	h.ctx.Scope.Dispatch(core.Down(h.g.spawn.X, 0))
	for i := 0; i < 200 && h.g.State() == StateInFlight; i++ {
		h.frames(1)
	}

	if h.g.State() != StateReady {
		t.Fatalf("state = %v, expected ready after leaving the top", h.g.State())
	}
	if h.g.Score() != 0 {
		t.Errorf("score = %d, expected 0", h.g.Score())
	}
	if h.g.tomato.Pos != h.g.spawn || h.g.tomato.Vel != (engine.Vec{}) || h.g.tomato.AngVel != 0 {
		t.Errorf("tomato not reset: %+v", h.g.tomato)
	}
}

func TestThrowDownResets(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())

	h.ctx.Scope.Dispatch(core.Down(h.g.spawn.X, 24))
	h.frames(30)

	if h.g.State() != StateReady || h.g.tomato.Pos != h.g.spawn {
		t.Errorf("state = %v pos = %+v, expected reset after hitting bottom", h.g.State(), h.g.tomato.Pos)
	}
}

func TestHitWins(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())
	h.parkTarget(h.g.spawn.X, 4)

	h.ctx.Scope.Dispatch(core.Down(h.g.spawn.X, 4))
	for i := 0; i < 200 && h.g.State() == StateInFlight; i++ {
		h.frames(1)
	}

	if h.g.State() != StateWon {
		t.Fatalf("state = %v, expected won", h.g.State())
	}
	if h.g.Score() != 1 {
		t.Errorf("score = %d, expected 1", h.g.Score())
	}
	if h.g.tomato.Vel != (engine.Vec{}) || h.g.tomato.AngVel != 0 {
		t.Errorf("tomato still moving after win: %+v", h.g.tomato)
	}

	// Frozen target, no further throws.
	tx := h.g.target.Pos.X
	h.g.targetDir = 1
	h.frames(10)
	if h.g.target.Pos.X != tx {
		t.Error("target moved after win")
	}
	throws := h.g.throws
	h.ctx.Scope.Dispatch(core.Down(0, 0))
	if h.g.throws != throws || h.g.State() != StateWon {
		t.Error("throw accepted after win")
	}

	h.ctx.Scope.Key(core.ActionConfirm)
	if len(h.handoffs) != 1 || h.handoffs[0] != scene.Valentine {
		t.Errorf("handoffs = %v, expected [valentine]", h.handoffs)
	}
}

func TestHitBelowWinScoreResets(t *testing.T) {
	tuning := config.DefaultConfig()
	tuning.Tomato.WinScore = 3
	h := newHarness(t, tuning)
	h.parkTarget(h.g.spawn.X, 4)

	for throw := 1; throw <= 2; throw++ {
		h.ctx.Scope.Dispatch(core.Down(h.g.spawn.X, 4))
		for i := 0; i < 200 && h.g.State() == StateInFlight; i++ {
			h.frames(1)
		}
		if h.g.Score() != throw || h.g.State() != StateReady {
			t.Fatalf("after hit %d: score = %d state = %v", throw, h.g.Score(), h.g.State())
		}
		if h.g.tomato.Pos != h.g.spawn {
			t.Errorf("after hit %d: tomato not back at spawn", throw)
		}
	}
}

func TestRender(t *testing.T) {
	h := newHarness(t, config.DefaultConfig())
	screen := core.NewScreen(80, 24)
	h.g.Render(screen)

	x, y := h.g.target.Rect().Cells().Center()
	if screen.Get(x, y) != '◎' {
		t.Errorf("target center = %q, expected ◎", screen.Get(x, y))
	}
}
