package renderers

import (
	"github.com/lixenwraith/vi-snake/render"
)

// RegisterAll installs the standard layers and returns the debug layer for toggling
func RegisterAll(o *render.RenderOrchestrator, debug bool) *DebugRenderer {
	o.Register(NewBoardRenderer(), render.PriorityBoard)
	o.Register(NewFoodRenderer(), render.PriorityFood)
	o.Register(NewSnakeRenderer(), render.PrioritySnake)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	dbg := NewDebugRenderer(debug)
	o.Register(dbg, render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	return dbg
}
