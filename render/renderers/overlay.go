package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/render"
)

// OverlayRenderer draws a centered message box for every phase except Running
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// overlayLines returns the title and body lines for a phase, nil while Running
func overlayLines(ctx render.RenderContext) (string, []string) {
	snap := ctx.Snapshot
	switch snap.State {
	case game.StateIdle:
		return "VI-SNAKE", []string{
			"Enter or Space to start",
			"arrows, wasd or hjkl to steer",
			"m mute   q quit",
		}
	case game.StatePaused:
		return "PAUSED", []string{
			fmt.Sprintf("Score %d", snap.Score),
			"Space to resume",
		}
	case game.StateGameOver:
		lines := []string{
			fmt.Sprintf("Score %d", snap.Score),
			fmt.Sprintf("Best  %d", snap.HighScore),
		}
		if len(ctx.Recent) > 0 {
			lines = append(lines, "", "Recent")
			lines = append(lines, ctx.Recent...)
		}
		return "GAME OVER", append(lines, "", "r or Space to play again")
	}
	return "", nil
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	title, lines := overlayLines(ctx)
	if lines == nil {
		return
	}

	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4
	height := len(lines) + 4

	left := (ctx.ScreenWidth - width) / 2
	top := (ctx.ScreenHeight - 1 - height) / 2
	left, top = max(left, 0), max(top, 0)

	bg := tcell.StyleDefault.Foreground(render.RgbStatusBar).Background(render.RgbOverlayBg)
	border := bg.Foreground(render.RgbOverlayBorder)

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			ch := ' '
			style := bg
			switch {
			case y == top || y == top+height-1:
				ch, style = constant.GlyphBorderH, border
			case x == left || x == left+width-1:
				ch, style = constant.GlyphBorderV, border
			}
			buf.Set(x, y, ch, style)
		}
	}
	buf.Set(left, top, constant.GlyphCornerTL, border)
	buf.Set(left+width-1, top, constant.GlyphCornerTR, border)
	buf.Set(left, top+height-1, constant.GlyphCornerBL, border)
	buf.Set(left+width-1, top+height-1, constant.GlyphCornerBR, border)

	center := func(s string) int {
		return left + (width-utf8.RuneCountInString(s))/2
	}
	buf.SetString(center(title), top+1, title, bg.Foreground(render.RgbOverlayTitle).Bold(true))
	for i, l := range lines {
		buf.SetString(center(l), top+3+i, l, bg)
	}
}
