// Package valentine implements the final scene: a yes/no question whose
// answer is sent through the session's answer sink, with hearts drifting up
// the screen in the background.
package valentine

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// Answers sent to the answer sink.
const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

// State is the question state. Answered is terminal.
type State int

const (
	StateAsking State = iota
	StateAnswered
)

func (s State) String() string {
	if s == StateAnswered {
		return "answered"
	}
	return "asking"
}

// button is a clickable answer.
type button struct {
	label   string
	answer  string
	rect    core.RectF
	color   core.Color
	pressed float64 // Press animation, 0 at rest
}

// heart is one decorative heart rising up the screen.
type heart struct {
	x, y  float64
	fade  float64 // 0 opaque, 1 gone
	glyph rune
}

// Game is the proposal scene.
type Game struct {
	ctx *scene.Context
	cfg config.ValentineConfig

	state   State
	answer  string
	message string

	questionAlpha float64
	messagePulse  float64
	yes, no       *button
	hearts        []*heart
	heartTimer    *engine.Timer
}

// New creates an unstarted valentine scene.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(scene.Valentine, func() scene.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (g *Game) ID() scene.ID {
	return scene.Valentine
}

// Enter fades the question in, places the buttons and starts the hearts.
func (g *Game) Enter(ctx *scene.Context) {
	g.ctx = ctx
	g.cfg = ctx.Tuning.Valentine
	g.state = StateAsking
	g.answer, g.message = "", ""
	g.hearts = nil

	w, h := ctx.Width(), ctx.Height()
	const bw, bh = 11, 3
	g.yes = &button{
		label:  g.cfg.YesLabel,
		answer: AnswerYes,
		rect:   core.CenteredRectF(w/2-10, h/2+1, bw, bh),
		color:  core.ColorBrightGreen,
	}
	g.no = &button{
		label:  g.cfg.NoLabel,
		answer: AnswerNo,
		rect:   core.CenteredRectF(w/2+10, h/2+1, bw, bh),
		color:  core.ColorBrightRed,
	}
	for _, b := range []*button{g.yes, g.no} {
		ctx.Scope.OnClick(func() core.RectF { return b.rect }, func() {
			g.choose(b)
		})
	}

	ctx.Scope.Tween(engine.TweenSpec{
		Duration: config.Ms(g.cfg.QuestionFadeMs),
		Ease:     engine.CubicOut,
		OnUpdate: func(v float64) { g.questionAlpha = v },
	})

	g.heartTimer = ctx.Scope.Every(config.Ms(g.cfg.HeartIntervalMs), g.spawnHeart)
}

// choose records the first answer. Later clicks are ignored.
func (g *Game) choose(b *button) {
	if g.state != StateAsking {
		return
	}
	g.state = StateAnswered
	g.answer = b.answer

	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: 100 * time.Millisecond,
		Yoyo:     true,
		OnUpdate: func(v float64) { b.pressed = v },
	})

	g.ctx.Log.Info("valentine answered", "answer", b.answer)
	g.ctx.Answers.Submit(b.answer)

	if b.answer == AnswerYes {
		g.message = g.cfg.YesMessage
	} else {
		g.message = g.cfg.NoMessage
	}
	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: 1200 * time.Millisecond,
		Ease:     engine.SineInOut,
		Yoyo:     true,
		Repeat:   -1,
		OnUpdate: func(v float64) { g.messagePulse = v },
	})
}

// spawnHeart starts a heart below the bottom edge and floats it off the top.
func (g *Game) spawnHeart() {
	w, h := g.ctx.Width(), g.ctx.Height()
	rng := g.ctx.Rand

	hr := &heart{
		x:     2 + rng.Float64()*max(0, w-4),
		y:     h,
		glyph: '♥',
	}
	if rng.Intn(3) == 0 {
		hr.glyph = '♡'
	}
	g.hearts = append(g.hearts, hr)

	span := g.cfg.HeartMaxMs - g.cfg.HeartMinMs
	ms := g.cfg.HeartMinMs
	if span > 0 {
		ms += rng.Intn(span + 1)
	}

	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: config.Ms(ms),
		Ease:     engine.SineOut,
		OnUpdate: func(v float64) {
			hr.y = core.Lerp(h, -1, v)
			hr.fade = v
		},
		OnComplete: func() { g.removeHeart(hr) },
	})
}

func (g *Game) removeHeart(hr *heart) {
	for i, other := range g.hearts {
		if other == hr {
			g.hearts = append(g.hearts[:i], g.hearts[i+1:]...)
			return
		}
	}
}

// Tick has no per-frame work; hearts and fades run on the scope.
func (g *Game) Tick(time.Duration) {}

// Exit drops the hearts. Their timer and tweens go with the scope.
func (g *Game) Exit() {
	g.hearts = nil
}

// State returns the question state.
func (g *Game) State() State {
	return g.state
}

// Answer returns the chosen answer, or "" while asking.
func (g *Game) Answer() string {
	return g.answer
}

// Message returns the message shown after answering.
func (g *Game) Message() string {
	return g.message
}
