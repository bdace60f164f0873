// Package jigsaw implements the drag-and-drop puzzle scene. Pieces are
// scattered over the playfield and snap into their board slot when dropped
// with enough overlap.
package jigsaw

import (
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

// State is the scene state.
type State int

const (
	StatePlaying State = iota
	StateComplete
)

func (s State) String() string {
	if s == StateComplete {
		return "complete"
	}
	return "playing"
}

// Game is the jigsaw scene.
type Game struct {
	ctx *scene.Context
	cfg config.JigsawConfig

	board       core.RectF
	pieces      []*Piece
	state       State
	topDepth    int
	completions int
	next        *scene.NextButton
}

// New creates an unstarted jigsaw scene.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(scene.Jigsaw, func() scene.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (g *Game) ID() scene.ID {
	return scene.Jigsaw
}

// Enter lays out the board and scatters the pieces.
func (g *Game) Enter(ctx *scene.Context) {
	g.ctx = ctx
	g.cfg = ctx.Tuning.Jigsaw
	g.state = StatePlaying
	g.topDepth = 0

	w, h := ctx.Width(), ctx.Height()
	bw, bh := w*g.cfg.BoardWidthRatio, h*g.cfg.BoardHeightRatio
	g.board = core.RectF{X: (w - bw) / 2, Y: (h - bh) / 2, W: bw, H: bh}

	pw := bw / float64(g.cfg.Cols)
	ph := bh / float64(g.cfg.Rows)
	mx := max(g.cfg.SpawnMargin, pw/2)
	my := max(g.cfg.SpawnMargin, ph/2)

	g.pieces = g.pieces[:0]
	for row := 0; row < g.cfg.Rows; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			p := &Piece{
				Col:  col,
				Row:  row,
				game: g,
				w:    pw,
				h:    ph,
				target: engine.Vec{
					X: g.board.X + float64(col)*pw + pw/2,
					Y: g.board.Y + float64(row)*ph + ph/2,
				},
				pos: engine.Vec{
					X: between(ctx, mx, w-mx),
					Y: between(ctx, my, h-my),
				},
			}
			p.depth = g.raise()
			p.listener = ctx.Scope.Draggable(p)
			g.pieces = append(g.pieces, p)
		}
	}
}

// between returns a uniform value in [lo, hi], or their midpoint if the
// range is empty.
func between(ctx *scene.Context, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + ctx.Rand.Float64()*(hi-lo)
}

func (g *Game) raise() int {
	g.topDepth++
	return g.topDepth
}

// drop resolves a released piece.
// snapEpsilon absorbs rounding in the overlap ratio so the threshold stays
// inclusive on piece sizes that are not exact in binary.
const snapEpsilon = 1e-9

func (g *Game) drop(p *Piece) {
	overlap := core.OverlapPercent(p.Bounds(), p.Slot())
	if overlap+snapEpsilon < g.cfg.SnapThreshold {
		if g.cfg.SnapBack {
			g.returnPiece(p)
		}
		return
	}

	p.state = PieceSnapping
	p.listener.Remove()

	from := p.pos
	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: config.Ms(g.cfg.SnapMs),
		Ease:     engine.BackOut,
		OnUpdate: func(v float64) {
			p.pos = engine.Vec{
				X: core.Lerp(from.X, p.target.X, v),
				Y: core.Lerp(from.Y, p.target.Y, v),
			}
		},
		OnComplete: func() {
			p.pos = p.target
			p.state = PiecePlaced
			g.checkComplete()
		},
	})
}

// returnPiece slides a missed drop back to where its drag began.
func (g *Game) returnPiece(p *Piece) {
	p.state = PieceReturning
	from, to := p.pos, p.start
	g.ctx.Scope.Tween(engine.TweenSpec{
		Duration: config.Ms(g.cfg.SnapMs),
		Ease:     engine.CubicOut,
		OnUpdate: func(v float64) {
			p.pos = engine.Vec{
				X: core.Lerp(from.X, to.X, v),
				Y: core.Lerp(from.Y, to.Y, v),
			}
		},
		OnComplete: func() {
			p.pos = to
			p.state = PieceLoose
		},
	})
}

func (g *Game) checkComplete() {
	if g.state == StateComplete {
		return
	}
	for _, p := range g.pieces {
		if !p.Placed() {
			return
		}
	}

	g.state = StateComplete
	g.completions++
	g.ctx.Log.Info("jigsaw complete", "pieces", len(g.pieces))
	g.next = scene.ShowNext(g.ctx, scene.Jigsaw, g.ctx.Width()/2, g.board.Bottom()-1)
}

// Tick has no per-frame work; snapping runs on the scope.
func (g *Game) Tick(time.Duration) {}

// Exit releases nothing beyond the scope.
func (g *Game) Exit() {}

// State returns the scene state.
func (g *Game) State() State {
	return g.state
}

// Pieces returns the pieces in board order.
func (g *Game) Pieces() []*Piece {
	return g.pieces
}
