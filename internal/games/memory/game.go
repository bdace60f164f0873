// Package memory implements the matching-pairs scene: a grid of face-down
// cards where the player turns two at a time looking for pairs.
package memory

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// State is the turn state of the board.
type State int

const (
	StateIdle           State = iota // Waiting for the first card of a turn
	StateRevealing                   // A card is flipping face up
	StateAwaitingSecond              // One card is up, waiting for the second
	StateResolving                   // Two cards are up and being compared
	StateComplete                    // Every pair is matched
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRevealing:
		return "revealing"
	case StateAwaitingSecond:
		return "awaiting_second"
	case StateResolving:
		return "resolving"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Card is one tile on the board.
type Card struct {
	Key      int // Index into the face list; two cards share each key
	Revealed bool
	Matched  bool

	rect     core.RectF
	scaleX   float64 // Horizontal scale during a flip, 1 at rest
	faceShow bool    // Which side is currently drawn
}

// Game is the matching-pairs scene.
type Game struct {
	ctx *scene.Context
	cfg config.MemoryConfig

	cards   []*Card
	first   *Card
	second  *Card
	state   State
	matches int

	// completions counts entries into StateComplete.
	completions int
	next        *scene.NextButton
}

// New creates an unstarted memory scene.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(scene.Memory, func() scene.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (g *Game) ID() scene.ID {
	return scene.Memory
}

// Enter shuffles the deck, lays it out and starts listening for clicks.
func (g *Game) Enter(ctx *scene.Context) {
	g.ctx = ctx
	g.cfg = ctx.Tuning.Memory
	g.state = StateIdle
	g.matches = 0
	g.first, g.second = nil, nil

	keys := make([]int, 0, g.cfg.Pairs()*2)
	for i := 0; i < g.cfg.Pairs(); i++ {
		keys = append(keys, i, i)
	}
	core.Shuffle(ctx.Rand, keys)

	rects := g.layout(ctx.Width(), ctx.Height())
	g.cards = make([]*Card, len(keys))
	for i, key := range keys {
		card := &Card{Key: key, rect: rects[i], scaleX: 1}
		g.cards[i] = card
		ctx.Scope.OnClick(func() core.RectF { return card.rect }, func() {
			g.click(card)
		})
	}
}

// layout returns the card rectangles in row-major order, centered on the
// playfield. Cards shrink when the configured size does not fit.
func (g *Game) layout(w, h float64) []core.RectF {
	cols, rows := g.cfg.Cols, g.cfg.Rows
	gap := float64(g.cfg.Gap)
	cw, ch := float64(g.cfg.CardWidth), float64(g.cfg.CardHeight)

	// Leave a two-line header.
	const top = 2
	if fit := (w - gap*float64(cols-1)) / float64(cols); cw > fit {
		cw = max(3, float64(int(fit)))
	}
	if fit := (h - top - gap*float64(rows-1)) / float64(rows); ch > fit {
		ch = max(3, float64(int(fit)))
	}

	gridW := float64(cols)*cw + float64(cols-1)*gap
	gridH := float64(rows)*ch + float64(rows-1)*gap
	startX := float64(int((w - gridW) / 2))
	startY := top + float64(int((h-top-gridH)/2))

	rects := make([]core.RectF, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rects = append(rects, core.RectF{
				X: startX + float64(col)*(cw+gap),
				Y: startY + float64(row)*(ch+gap),
				W: cw,
				H: ch,
			})
		}
	}
	return rects
}

// click handles a pointer-down on card.
func (g *Game) click(card *Card) {
	if g.state != StateIdle && g.state != StateAwaitingSecond {
		return
	}
	if card.Revealed || card.Matched {
		return
	}

	g.state = StateRevealing
	g.flip(card, true, func() {
		if g.first == nil {
			g.first = card
			g.state = StateAwaitingSecond
			return
		}
		g.second = card
		g.state = StateResolving
		g.ctx.Scope.After(config.Ms(g.cfg.CompareDelayMs), g.resolve)
	})
}

// flip turns card to the given side with two half-flips, then calls done.
func (g *Game) flip(card *Card, faceUp bool, done func()) {
	card.Revealed = faceUp
	half := config.Ms(g.cfg.FlipMs)

	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: half,
		OnUpdate: func(v float64) { card.scaleX = 1 - v },
		OnComplete: func() {
			card.faceShow = faceUp
			g.ctx.Scope.Tween(engine.TweenSpec{
				Duration:   half,
				OnUpdate:   func(v float64) { card.scaleX = v },
				OnComplete: done,
			})
		},
	})
}

// resolve compares the two revealed cards.
func (g *Game) resolve() {
	if g.state != StateResolving || g.first == nil || g.second == nil {
		return
	}

	a, b := g.first, g.second
	if a.Key == b.Key {
		a.Matched = true
		b.Matched = true
		g.matches++
		g.endTurn()
		if g.matches == g.cfg.Pairs() {
			g.complete()
		}
		return
	}

	g.flip(a, false, nil)
	g.flip(b, false, g.endTurn)
}

func (g *Game) endTurn() {
	g.first, g.second = nil, nil
	if g.state != StateComplete {
		g.state = StateIdle
	}
}

func (g *Game) complete() {
	if g.state == StateComplete {
		return
	}
	g.state = StateComplete
	g.completions++
	g.ctx.Log.Info("memory complete", "pairs", g.matches)

	g.next = scene.ShowNext(g.ctx, scene.Memory, g.ctx.Width()/2, g.ctx.Height()/2-1)
}

// Tick has no per-frame work; flips and comparisons run on the scope.
func (g *Game) Tick(time.Duration) {}

// Exit releases nothing beyond the scope.
func (g *Game) Exit() {}

// State returns the current turn state.
func (g *Game) State() State {
	return g.state
}
