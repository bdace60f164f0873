package jigsaw

import (
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
)

// PieceState is the lifecycle of one piece. Placed is terminal.
type PieceState int

const (
	PieceLoose PieceState = iota
	PieceDragging
	PieceSnapping
	PiecePlaced
	PieceReturning
)

func (s PieceState) String() string {
	switch s {
	case PieceLoose:
		return "loose"
	case PieceDragging:
		return "dragging"
	case PieceSnapping:
		return "snapping"
	case PiecePlaced:
		return "placed"
	case PieceReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Piece is one tile of the picture.
type Piece struct {
	Col, Row int

	game   *Game
	state  PieceState
	pos    engine.Vec // Center
	start  engine.Vec // Center when the current drag began
	target engine.Vec // Center of the board slot
	w, h   float64
	depth  int

	listener *engine.Listener
}

// Bounds implements engine.DragTarget.
func (p *Piece) Bounds() core.RectF {
	return core.CenteredRectF(p.pos.X, p.pos.Y, p.w, p.h)
}

// Slot returns the board rectangle the piece belongs in.
func (p *Piece) Slot() core.RectF {
	return core.CenteredRectF(p.target.X, p.target.Y, p.w, p.h)
}

// Depth implements engine.DragTarget.
func (p *Piece) Depth() int {
	return p.depth
}

// DragStart lifts the piece above every other piece.
func (p *Piece) DragStart() {
	if p.state != PieceLoose {
		return
	}
	p.state = PieceDragging
	p.start = p.pos
	p.depth = p.game.raise()
}

// Drag moves the piece with the pointer.
func (p *Piece) Drag(dx, dy float64) {
	if p.state != PieceDragging {
		return
	}
	p.pos = engine.Vec{X: p.start.X + dx, Y: p.start.Y + dy}
}

// DragEnd drops the piece and snaps it if it covers enough of its slot.
func (p *Piece) DragEnd() {
	if p.state != PieceDragging {
		return
	}
	p.state = PieceLoose
	p.game.drop(p)
}

// State returns the piece state.
func (p *Piece) State() PieceState {
	return p.state
}

// Placed reports whether the piece is locked in its slot.
func (p *Piece) Placed() bool {
	return p.state == PiecePlaced
}
