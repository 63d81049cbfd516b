package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbBoard      = tcell.NewRGBColor(36, 40, 59)  // Play field
	RgbBorder     = tcell.NewRGBColor(86, 95, 137) // Frame

	RgbSnakeHead = tcell.NewRGBColor(158, 206, 106) // Bright green
	RgbSnakeBody = tcell.NewRGBColor(115, 170, 80)  // Green
	RgbSnakeTail = tcell.NewRGBColor(60, 110, 50)   // Dark green
	RgbSnakeDead = tcell.NewRGBColor(247, 118, 142) // Red

	RgbFood = tcell.NewRGBColor(255, 158, 100) // Orange

	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim   = tcell.NewRGBColor(150, 150, 150)
	RgbHighScore   = tcell.NewRGBColor(224, 175, 104) // Gold
	RgbAudioMuted  = tcell.NewRGBColor(255, 0, 0)
	RgbAudioActive = tcell.NewRGBColor(0, 255, 0)

	RgbOverlayBg     = tcell.NewRGBColor(20, 20, 30)
	RgbOverlayBorder = tcell.NewRGBColor(125, 207, 255) // Cyan
	RgbOverlayTitle  = tcell.NewRGBColor(255, 255, 0)
)

// Gradient blends from a toward b by t in [0,1]
func Gradient(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
