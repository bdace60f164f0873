package tomato

import (
	"fmt"
	"math"

	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// Spin frames for the tomato, one per quarter turn.
var spinFrames = []rune{'◐', '◓', '◑', '◒'}

// Render draws the HUD, the target and the tomato.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d/%d", g.score, g.cfg.WinScore), core.ColorBrightWhite)
	title := "Tomato Toss"
	dst.DrawTextColored(dst.Width()-len([]rune(title))-1, 0, title, core.ColorBrightMagenta)

	g.renderTarget(dst)
	g.renderTomato(dst)

	if g.state == StateReady && g.throws == 0 {
		dst.DrawTextCenteredColored(int(g.spawn.Y)-3, "click to throw", core.ColorGray)
	}

	if g.state == StateWon {
		color := core.ColorRose
		if g.winPulse > 0.5 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCenteredColored(int(g.ctx.Height()/2)-1, "You Win ♥", color)
		g.next.Render(dst)
	}
}

func (g *Game) renderTarget(dst *core.Screen) {
	r := g.target.Rect().Cells()
	dst.DrawRectColored(r, '▒', core.ColorYellow)
	cx, cy := r.Center()
	dst.SetColored(cx-1, cy, '(', core.ColorRed)
	dst.SetColored(cx, cy, '◎', core.ColorBrightRed)
	dst.SetColored(cx+1, cy, ')', core.ColorRed)
}

func (g *Game) renderTomato(dst *core.Screen) {
	r := g.tomato.Rect().Cells()
	turn := math.Mod(g.tomato.Angle, 360)
	if turn < 0 {
		turn += 360
	}
	frame := spinFrames[int(turn/90)%len(spinFrames)]
	dst.DrawRectColored(r, frame, core.ColorBrightRed)
}
