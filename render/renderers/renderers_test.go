package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/render"
)

func setup(t *testing.T) (*render.RenderOrchestrator, *DebugRenderer) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)

	o := render.NewRenderOrchestrator(s)
	return o, RegisterAll(o, false)
}

func rowText(buf *render.RenderBuffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Width(); x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(buf *render.RenderBuffer) string {
	var sb strings.Builder
	for y := 0; y < buf.Height(); y++ {
		sb.WriteString(rowText(buf, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bgAt(buf *render.RenderBuffer, x, y int) tcell.Color {
	_, bg, _ := buf.Get(x, y).Style.Decompose()
	return bg
}

func runningSnapshot() game.Snapshot {
	return game.Snapshot{
		State:     game.StateRunning,
		TileCount: 20,
		Snake:     []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		PrevSnake: []core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}},
		Food:      core.Point{X: 10, Y: 12},
		HasFood:   true,
		Score:     7,
		HighScore: 42,
		Direction: core.DirRight,
	}
}

func TestRunningFrame(t *testing.T) {
	o, _ := setup(t)
	snap := runningSnapshot()
	snap.Interpolation = 1
	ctx := render.NewRenderContext(snap, 80, 30)
	o.RenderFrame(ctx)
	buf := o.Buffer()

	hx, hy := ctx.TileToScreen(5, 5)
	if bg := bgAt(buf, hx, hy); bg != render.RgbSnakeHead {
		t.Errorf("Expected head color at (%d,%d), got %v", hx, hy, bg)
	}
	if bg := bgAt(buf, hx+1, hy); bg != render.RgbSnakeHead {
		t.Errorf("Expected head to span two columns, got %v", bg)
	}
	tx, ty := ctx.TileToScreen(3, 5)
	if bg := bgAt(buf, tx, ty); bg != render.RgbSnakeTail {
		t.Errorf("Expected tail color, got %v", bg)
	}

	fx, fy := ctx.TileToScreen(10, 12)
	if buf.Get(fx, fy).Rune != constant.GlyphFood {
		t.Errorf("Expected food glyph at (%d,%d)", fx, fy)
	}

	// Frame corners
	if buf.Get(ctx.BoardX-1, ctx.BoardY-1).Rune != constant.GlyphCornerTL {
		t.Error("Expected top-left frame corner")
	}

	status := rowText(buf, 29)
	if !strings.Contains(status, "SCORE 7") || !strings.Contains(status, "HIGH 42") {
		t.Errorf("Expected score and high score in status bar, got %q", status)
	}
	if !strings.Contains(status, "Running") {
		t.Errorf("Expected phase in status bar, got %q", status)
	}

	if strings.Contains(screenText(buf), "GAME OVER") || strings.Contains(screenText(buf), "PAUSED") {
		t.Error("Expected no overlay while running")
	}
}

func TestSnakeInterpolation(t *testing.T) {
	o, _ := setup(t)
	snap := runningSnapshot()
	snap.Interpolation = 0.5
	ctx := render.NewRenderContext(snap, 80, 30)
	o.RenderFrame(ctx)

	// Head halfway between x=4 and x=5 lands one column right of tile 4
	x4, y := ctx.TileToScreen(4, 5)
	if bg := bgAt(o.Buffer(), x4+1, y); bg != render.RgbSnakeHead {
		t.Errorf("Expected interpolated head at column %d, got %v", x4+1, bg)
	}
	x5, _ := ctx.TileToScreen(5, 5)
	if bg := bgAt(o.Buffer(), x5+1, y); bg == render.RgbSnakeHead {
		t.Error("Expected head not yet on its target tile's right column")
	}
}

func TestOverlayPerPhase(t *testing.T) {
	tests := []struct {
		state game.State
		want  string
	}{
		{game.StateIdle, "Enter or Space to start"},
		{game.StatePaused, "PAUSED"},
		{game.StateGameOver, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			o, _ := setup(t)
			snap := runningSnapshot()
			snap.State = tt.state
			o.RenderFrame(render.NewRenderContext(snap, 80, 30))
			if text := screenText(o.Buffer()); !strings.Contains(text, tt.want) {
				t.Errorf("Expected %q on screen", tt.want)
			}
		})
	}
}

func TestGameOverFinalScore(t *testing.T) {
	o, _ := setup(t)
	snap := runningSnapshot()
	snap.State = game.StateGameOver
	ctx := render.NewRenderContext(snap, 80, 30)
	o.RenderFrame(ctx)

	text := screenText(o.Buffer())
	if !strings.Contains(text, "Score 7") || !strings.Contains(text, "Best  42") {
		t.Error("Expected final and best score in game over box")
	}
}

func TestGameOverListsRecentSessions(t *testing.T) {
	o, _ := setup(t)
	snap := runningSnapshot()
	snap.State = game.StateGameOver
	ctx := render.NewRenderContext(snap, 80, 30)
	ctx.Recent = []string{"  70  len 8   self 21s", "  40  len 5   wall 9s"}
	o.RenderFrame(ctx)

	text := screenText(o.Buffer())
	for _, want := range append([]string{"Recent"}, ctx.Recent...) {
		if !strings.Contains(text, strings.TrimSpace(want)) {
			t.Errorf("Expected %q in game over box", want)
		}
	}

	snap.State = game.StatePaused
	ctx = render.NewRenderContext(snap, 80, 30)
	ctx.Recent = []string{"  70  len 8   self 21s"}
	o.RenderFrame(ctx)
	if strings.Contains(screenText(o.Buffer()), "Recent") {
		t.Error("Expected history only on the game over box")
	}
}

func TestDeadSnakeColor(t *testing.T) {
	o, _ := setup(t)
	snap := runningSnapshot()
	snap.State = game.StateGameOver
	snap.Interpolation = 1
	ctx := render.NewRenderContext(snap, 80, 30)
	o.RenderFrame(ctx)

	// Tail cell lies outside the centered overlay box
	x, y := ctx.TileToScreen(3, 5)
	if bg := bgAt(o.Buffer(), x, y); bg != render.RgbSnakeDead {
		t.Errorf("Expected dead color, got %v", bg)
	}
}

func TestStatusBarMuted(t *testing.T) {
	o, _ := setup(t)
	ctx := render.NewRenderContext(runningSnapshot(), 80, 30)
	ctx.Muted = true
	o.RenderFrame(ctx)

	if bg := bgAt(o.Buffer(), 0, 29); bg != render.RgbAudioMuted {
		t.Errorf("Expected muted indicator, got %v", bg)
	}
}

func TestDebugToggle(t *testing.T) {
	o, dbg := setup(t)
	ctx := render.NewRenderContext(runningSnapshot(), 80, 30)
	ctx.Metrics = []string{"engine.ticks: 12", "game.score: 7"}
	ctx.Food = "(10,12) ok"

	o.RenderFrame(ctx)
	if strings.Contains(rowText(o.Buffer(), 0), "food") {
		t.Error("Expected debug rows hidden by default")
	}

	if !dbg.Toggle() {
		t.Fatal("Expected toggle to enable debug rows")
	}
	o.RenderFrame(ctx)
	if row := rowText(o.Buffer(), 0); !strings.Contains(row, "food (10,12) ok") {
		t.Errorf("Expected food readout, got %q", row)
	}
	if row := rowText(o.Buffer(), 1); !strings.Contains(row, "engine.ticks: 12  game.score: 7") {
		t.Errorf("Expected packed metrics row, got %q", row)
	}
}

func TestRenderFromSession(t *testing.T) {
	o, _ := setup(t)
	s := game.NewSession(game.Config{TileCount: 20})
	s.Start()
	s.OnTick()

	snap := s.Snapshot()
	ctx := render.NewRenderContext(snap, 80, 30)
	o.RenderFrame(ctx)

	head := snap.Head()
	x, y := ctx.FracTileToScreen(snap.Segment(0))
	if x < ctx.BoardX || y != ctx.BoardY+head.Y {
		t.Errorf("Expected head on row %d inside board, got (%d,%d)", ctx.BoardY+head.Y, x, y)
	}
	if bg := bgAt(o.Buffer(), x, y); bg != render.RgbSnakeHead {
		t.Errorf("Expected head color, got %v", bg)
	}
}
