// Package tomato implements the throwing scene: the player flings a tomato
// at a target sliding back and forth across the top of the playfield.
package tomato

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// State is the throw state.
type State int

const (
	StateReady    State = iota // Tomato resting at the spawn point
	StateInFlight              // Tomato thrown, physics running
	StateWon                   // Win score reached, throwing disabled
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateInFlight:
		return "in_flight"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game is the tomato throwing scene.
type Game struct {
	ctx        *scene.Context
	cfg        config.TomatoConfig
	difficulty *config.DifficultyManager

	world     engine.World
	tomato    engine.Body
	target    engine.Body
	targetDir float64 // +1 right, -1 left, 0 frozen
	spawn     engine.Vec

	state  State
	score  int
	throws int

	winPulse float64
	next     *scene.NextButton
}

// New creates an unstarted tomato scene.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(scene.Tomato, func() scene.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (g *Game) ID() scene.ID {
	return scene.Tomato
}

// Enter places the target and the tomato and listens for throws.
func (g *Game) Enter(ctx *scene.Context) {
	g.ctx = ctx
	g.cfg = ctx.Tuning.Tomato
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = StateReady
	g.score = 0
	g.throws = 0
	g.winPulse = 0

	w, h := ctx.Width(), ctx.Height()
	g.world = engine.World{
		Bounds:  core.RectF{X: 0, Y: 0, W: w, H: h},
		Gravity: g.cfg.Gravity,
	}

	g.target = engine.Body{W: g.cfg.TargetWidth, H: g.cfg.TargetHeight}
	g.target.Place(w/2, g.cfg.TargetY)
	g.targetDir = 1

	g.spawn = engine.Vec{X: w / 2, Y: h - g.cfg.SpawnOffset}
	g.tomato = engine.Body{W: g.cfg.TomatoSize, H: g.cfg.TomatoSize, Bounce: g.cfg.Bounce}
	g.resetTomato()

	ctx.Scope.OnPointer(func(ev core.PointerEvent) {
		if ev.Kind == core.PointerDown {
			g.throw(ev.X, ev.Y)
		}
	})
}

// throw launches the tomato towards (x, y).
func (g *Game) throw(x, y float64) {
	if g.state != StateReady {
		return
	}

	nx, ny, err := core.Normalize(x-g.tomato.Pos.X, y-g.tomato.Pos.Y)
	if err != nil {
		// Clicked on the tomato itself: no direction to throw in.
		return
	}

	g.tomato.SetVelocity(nx*g.cfg.LaunchSpeed, ny*g.cfg.LaunchSpeed)
	g.tomato.SetAngularVelocity(g.cfg.Spin)
	g.state = StateInFlight
	g.throws++
}

// Tick moves the target and, while a throw is in flight, the tomato.
func (g *Game) Tick(dt time.Duration) {
	if g.state == StateWon {
		return
	}

	g.moveTarget(dt)

	if g.state != StateInFlight {
		return
	}

	hit := g.world.Step(&g.tomato, dt, true)
	if engine.Overlaps(&g.tomato, &g.target) {
		g.onTargetHit()
		return
	}
	if hit.Up || hit.Down {
		g.ctx.Log.Debug("tomato missed", "score", g.score)
		g.resetTomato()
	}
}

// moveTarget slides the target and turns it around at the margins.
func (g *Game) moveTarget(dt time.Duration) {
	speed := g.difficulty.Speed(g.cfg.TargetSpeed, g.score)
	g.target.Pos.X += speed * dt.Seconds() * g.targetDir

	lo, hi := g.cfg.Margin, g.world.Bounds.W-g.cfg.Margin
	if hi < lo {
		g.target.Pos.X = g.world.Bounds.W / 2
		return
	}
	if g.target.Pos.X > hi {
		g.target.Pos.X = hi
		g.targetDir = -1
	} else if g.target.Pos.X < lo {
		g.target.Pos.X = lo
		g.targetDir = 1
	}
}

func (g *Game) onTargetHit() {
	g.score++
	g.ctx.Log.Info("tomato hit", "score", g.score, "throws", g.throws)

	if g.score >= g.cfg.WinScore {
		g.win()
		return
	}
	g.resetTomato()
}

func (g *Game) win() {
	g.state = StateWon
	g.tomato.Halt()
	g.target.Halt()
	g.targetDir = 0

	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: 400 * time.Millisecond,
		Ease:     engine.SineInOut,
		Yoyo:     true,
		Repeat:   -1,
		OnUpdate: func(v float64) { g.winPulse = v },
	})
	g.next = scene.ShowNext(g.ctx, scene.Tomato, g.ctx.Width()/2, g.ctx.Height()/2+1)
}

// resetTomato returns the tomato to the spawn point, motionless.
func (g *Game) resetTomato() {
	g.tomato.Place(g.spawn.X, g.spawn.Y)
	g.state = StateReady
}

// Exit releases nothing beyond the scope.
func (g *Game) Exit() {}

// State returns the throw state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of hits.
func (g *Game) Score() int {
	return g.score
}
