package valentine

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// Render draws the hearts behind the question, the buttons and the message.
func (g *Game) Render(dst *core.Screen) {
	for _, hr := range g.hearts {
		color := core.ColorPink
		if hr.fade > 0.6 {
			color = core.ColorRose
		}
		dst.SetColored(int(math.Round(hr.x)), int(math.Round(hr.y)), hr.glyph, color)
	}

	mid := int(g.ctx.Height() / 2)
	if g.questionAlpha > 0 {
		color := core.ColorGray
		switch {
		case g.questionAlpha > 0.66:
			color = core.ColorBrightRed
		case g.questionAlpha > 0.33:
			color = core.ColorRose
		}
		dst.DrawTextCenteredColored(mid-4, g.cfg.Question, color)
	}

	g.renderButton(dst, g.yes)
	g.renderButton(dst, g.no)

	if g.state == StateAnswered {
		color := core.ColorRose
		if g.messagePulse > 0.5 {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextCenteredColored(mid+4, g.message, color)
	}
}

func (g *Game) renderButton(dst *core.Screen, b *button) {
	r := b.rect.Cells()
	color := b.color
	if g.state == StateAnswered && g.answer != b.answer {
		color = core.ColorGray
	}
	if b.pressed > 0.5 {
		r = core.NewRect(r.X+1, r.Y, r.W-2, r.H)
	}
	dst.DrawBoxColored(r, color)

	cx, cy := r.Center()
	dst.DrawTextColored(cx-utf8.RuneCountInString(b.label)/2, cy, b.label, color)
}
