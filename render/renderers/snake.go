package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/render"
)

// SnakeRenderer draws the body tail first so the head stays on top
// Segments are placed between their previous and current tile by the frame's interpolation factor
type SnakeRenderer struct{}

func NewSnakeRenderer() *SnakeRenderer {
	return &SnakeRenderer{}
}

func (r *SnakeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	n := snap.Length()
	if n == 0 {
		return
	}

	for i := n - 1; i >= 0; i-- {
		fx, fy := snap.Segment(i)
		x, y := ctx.FracTileToScreen(fx, fy)
		style := tcell.StyleDefault.Background(segmentColor(snap, i, n))
		buf.Set(x, y, ' ', style)
		buf.Set(x+1, y, ' ', style)
	}
}

func segmentColor(snap game.Snapshot, i, n int) tcell.Color {
	if snap.State == game.StateGameOver {
		return render.RgbSnakeDead
	}
	if i == 0 {
		return render.RgbSnakeHead
	}
	if n <= 2 {
		return render.RgbSnakeBody
	}
	return render.Gradient(render.RgbSnakeBody, render.RgbSnakeTail, float64(i-1)/float64(n-2))
}
