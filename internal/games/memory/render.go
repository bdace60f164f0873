package memory

import (
	"fmt"
	"math"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// Render draws the board, the header and the hand-off button.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "Memory Match", core.ColorBrightMagenta)
	dst.DrawTextCentered(1, fmt.Sprintf("Pairs: %d/%d", g.matches, g.cfg.Pairs()))

	for _, card := range g.cards {
		g.renderCard(dst, card)
	}

	if g.state == StateComplete {
		dst.DrawTextCenteredColored(int(g.ctx.Height()/2)-2, "♥", core.ColorRed)
		g.next.Render(dst)
	}
}

func (g *Game) renderCard(dst *core.Screen, card *Card) {
	// Narrow the card around its center while it flips.
	r := card.rect
	w := math.Max(1, math.Round(r.W*card.scaleX))
	cx, _ := r.Center()
	box := core.RectF{X: cx - w/2, Y: r.Y, W: w, H: r.H}.Cells()

	color := core.ColorWhite
	switch {
	case card.Matched:
		color = core.ColorGreen
	case card.faceShow:
		color = core.ColorPink
	}

	if box.W < 2 {
		dst.DrawVLine(box.X, box.Y, box.H, '│')
		return
	}
	dst.DrawBoxColored(box, color)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	if !card.faceShow {
		dst.DrawRectColored(inner, '░', core.ColorRose)
		return
	}
	if card.scaleX < 0.5 {
		return
	}
	face := g.face(card.Key)
	fx, fy := inner.Center()
	dst.DrawTextColored(fx, fy, face, color)
}

func (g *Game) face(key int) string {
	if key >= 0 && key < len(g.cfg.Faces) {
		return g.cfg.Faces[key]
	}
	return "?"
}
