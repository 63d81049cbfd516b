package render

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/game"
)

// TileWidth is the number of terminal columns per board tile, keeping tiles roughly square
const TileWidth = constant.CellColumns

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot game.Snapshot

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Board origin on screen (inside the frame)
	BoardX int
	BoardY int

	Muted bool

	// Recent finished sessions, listed on the game-over box when the store keeps history
	Recent []string

	// Debug readouts
	Metrics []string
	Food    string
}

// NewRenderContext centers the board, leaving the bottom row for the status bar
func NewRenderContext(snap game.Snapshot, screenWidth, screenHeight int) RenderContext {
	boardW := snap.TileCount*TileWidth + 2*constant.BoardBorder
	boardH := snap.TileCount + 2*constant.BoardBorder

	x := (screenWidth - boardW) / 2
	y := (screenHeight - 1 - boardH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return RenderContext{
		Snapshot:     snap,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		BoardX:       x + constant.BoardBorder,
		BoardY:       y + constant.BoardBorder,
	}
}

// TileToScreen maps a board tile to the left column and row of its screen cells
func (rc *RenderContext) TileToScreen(tx, ty int) (int, int) {
	return rc.BoardX + tx*TileWidth, rc.BoardY + ty
}

// FracTileToScreen maps an interpolated tile position, rounding to the nearest column and row
func (rc *RenderContext) FracTileToScreen(fx, fy float64) (int, int) {
	return rc.BoardX + round(fx*TileWidth), rc.BoardY + round(fy)
}

// StatusY is the status bar row
func (rc *RenderContext) StatusY() int {
	return rc.ScreenHeight - 1
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
