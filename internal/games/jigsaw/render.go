package jigsaw

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// Render draws the empty slots, then the pieces from lowest to highest depth.
func (g *Game) Render(dst *core.Screen) {
	placed := 0
	for _, p := range g.pieces {
		if p.Placed() {
			placed++
		}
	}
	dst.DrawTextCenteredColored(0, "Jigsaw", core.ColorBrightMagenta)
	dst.DrawTextCentered(1, fmt.Sprintf("Placed: %d/%d", placed, len(g.pieces)))

	g.renderSlots(dst)

	ordered := append([]*Piece(nil), g.pieces...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].depth < ordered[j].depth
	})
	for _, p := range ordered {
		g.renderPiece(dst, p)
	}

	if g.state == StateComplete {
		g.next.Render(dst)
	}
}

func (g *Game) renderSlots(dst *core.Screen) {
	b := g.board.Cells()
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			dst.SetColored(x, y, '·', core.ColorGray)
		}
	}
}

// renderPiece paints the piece's slice of the heart picture at its current
// position.
func (g *Game) renderPiece(dst *core.Screen, p *Piece) {
	r := p.Bounds()
	cells := r.Cells()
	slot := p.Slot()

	for cy := 0; cy < cells.H; cy++ {
		for cx := 0; cx < cells.W; cx++ {
			// Sample the picture at the matching point of the slot.
			u := (slot.X + float64(cx) + 0.5 - g.board.X) / g.board.W
			v := (slot.Y + float64(cy) + 0.5 - g.board.Y) / g.board.H

			ch, color := '░', core.ColorRose
			if inHeart(u, v) {
				ch, color = '█', core.ColorRed
			}
			if p.state == PieceDragging {
				color = core.ColorPink
			}
			dst.SetColored(cells.X+cx, cells.Y+cy, ch, color)
		}
	}
}

// inHeart reports whether (u, v) in [0,1]² lies inside the heart picture.
func inHeart(u, v float64) bool {
	x := (u - 0.5) * 2.6
	y := (0.45 - v) * 2.6
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}
