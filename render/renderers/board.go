package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/render"
)

// BoardRenderer draws the play field and its frame
type BoardRenderer struct{}

func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

func (r *BoardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	tiles := ctx.Snapshot.TileCount
	if tiles <= 0 {
		return
	}

	fieldStyle := tcell.StyleDefault.Background(render.RgbBoard)
	borderStyle := tcell.StyleDefault.Foreground(render.RgbBorder).Background(render.RgbBackground)

	w := tiles * render.TileWidth
	left, top := ctx.BoardX-1, ctx.BoardY-1
	right, bottom := ctx.BoardX+w, ctx.BoardY+tiles

	for y := ctx.BoardY; y < bottom; y++ {
		for x := ctx.BoardX; x < right; x++ {
			buf.Set(x, y, ' ', fieldStyle)
		}
		buf.Set(left, y, constant.GlyphBorderV, borderStyle)
		buf.Set(right, y, constant.GlyphBorderV, borderStyle)
	}
	for x := ctx.BoardX; x < right; x++ {
		buf.Set(x, top, constant.GlyphBorderH, borderStyle)
		buf.Set(x, bottom, constant.GlyphBorderH, borderStyle)
	}
	buf.Set(left, top, constant.GlyphCornerTL, borderStyle)
	buf.Set(right, top, constant.GlyphCornerTR, borderStyle)
	buf.Set(left, bottom, constant.GlyphCornerBL, borderStyle)
	buf.Set(right, bottom, constant.GlyphCornerBR, borderStyle)
}
