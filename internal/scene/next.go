package scene

import (
	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
)

// NextLabel is the caption of the hand-off button.
const NextLabel = "Play Next ▶"

// NextButton is the hand-off control a scene shows once it is complete.
// It fires at most once, on click, on the confirm key, or after the
// auto-advance delay when the session is configured for it.
type NextButton struct {
	ctx   *Context
	to    ID
	rect  core.RectF
	fired bool
}

// ShowNext places the hand-off button centered at (cx, y) and arms it.
// It returns nil when from is the final scene.
func ShowNext(ctx *Context, from ID, cx, y float64) *NextButton {
	to, ok := Next(from)
	if !ok {
		return nil
	}

	w := float64(len([]rune(NextLabel)) + 4)
	b := &NextButton{
		ctx:  ctx,
		to:   to,
		rect: core.RectF{X: cx - w/2, Y: y, W: w, H: 3},
	}

	ctx.Scope.OnClick(b.Bounds, b.fire)
	ctx.Scope.OnKey(func(a core.Action) {
		if a == core.ActionConfirm {
			b.fire()
		}
	})
	if s := ctx.Tuning.Session; s.AutoAdvance {
		ctx.Scope.After(config.Ms(s.AutoAdvanceMs), b.fire)
	}
	return b
}

// Bounds returns the clickable area.
func (b *NextButton) Bounds() core.RectF {
	return b.rect
}

// Target returns the scene the button hands off to.
func (b *NextButton) Target() ID {
	return b.to
}

// Fired reports whether the hand-off was requested.
func (b *NextButton) Fired() bool {
	return b.fired
}

func (b *NextButton) fire() {
	if b.fired {
		return
	}
	b.fired = true
	b.ctx.Log.Debug("hand-off requested", "to", b.to)
	b.ctx.Handoff(b.to)
}

// Render draws the button. Safe on a nil button.
func (b *NextButton) Render(dst *core.Screen) {
	if b == nil {
		return
	}
	r := b.rect.Cells()
	color := core.ColorBrightGreen
	if b.fired {
		color = core.ColorGray
	}
	dst.DrawBoxColored(r, color)
	dst.DrawTextColored(r.X+2, r.Y+1, NextLabel, color)
}
