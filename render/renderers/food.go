package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/render"
)

// FoodRenderer draws the food tile
type FoodRenderer struct{}

func NewFoodRenderer() *FoodRenderer {
	return &FoodRenderer{}
}

func (r *FoodRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if !snap.HasFood || !snap.Food.InBounds(snap.TileCount) {
		return
	}
	style := tcell.StyleDefault.Foreground(render.RgbFood).Background(render.RgbBoard)
	x, y := ctx.TileToScreen(snap.Food.X, snap.Food.Y)
	buf.Set(x, y, constant.GlyphFood, style)
	buf.Set(x+1, y, ' ', style)
}
