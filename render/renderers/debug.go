package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/render"
)

// DebugRenderer prints metric readouts along the top rows, hidden by default
type DebugRenderer struct {
	visible bool
}

func NewDebugRenderer(visible bool) *DebugRenderer {
	return &DebugRenderer{visible: visible}
}

func (r *DebugRenderer) IsVisible() bool { return r.visible }

// Toggle flips visibility and returns the new value
func (r *DebugRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := tcell.StyleDefault.Foreground(render.RgbStatusDim).Background(render.RgbBackground)

	y := 0
	if ctx.Food != "" {
		buf.SetString(0, y, "food "+ctx.Food, style)
		y++
	}

	// Pack metric lines into rows no wider than the screen
	var row strings.Builder
	for _, line := range ctx.Metrics {
		if row.Len() > 0 && row.Len()+len(line)+2 > ctx.ScreenWidth {
			buf.SetString(0, y, row.String(), style)
			row.Reset()
			y++
		}
		if row.Len() > 0 {
			row.WriteString("  ")
		}
		row.WriteString(line)
	}
	if row.Len() > 0 {
		buf.SetString(0, y, row.String(), style)
	}
}
