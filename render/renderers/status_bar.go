package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/render"
)

const (
	audioOnStr  = " ♪ "
	audioOffStr = " ✕ "
)

// StatusBarRenderer draws audio state, score, best and lifecycle phase on the bottom row
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.StatusY()
	base := tcell.StyleDefault.Foreground(render.RgbStatusBar).Background(render.RgbBackground)

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, y, ' ', base)
	}

	x := 0
	if ctx.Muted {
		x = buf.SetString(x, y, audioOffStr, base.Foreground(tcell.ColorBlack).Background(render.RgbAudioMuted))
	} else {
		x = buf.SetString(x, y, audioOnStr, base.Foreground(tcell.ColorBlack).Background(render.RgbAudioActive))
	}

	snap := ctx.Snapshot
	x = buf.SetString(x+1, y, fmt.Sprintf("SCORE %d", snap.Score), base)
	x = buf.SetString(x+2, y, fmt.Sprintf("HIGH %d", snap.HighScore), base.Foreground(render.RgbHighScore))

	// Right-aligned phase
	phase := snap.State.String()
	px := ctx.ScreenWidth - len(phase) - 1
	if px > x+1 {
		buf.SetString(px, y, phase, base.Foreground(render.RgbStatusDim))
	}
}
