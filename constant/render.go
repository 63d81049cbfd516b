package constant

// Terminal layout
const (
	// CellColumns is the terminal columns per grid tile, terminal cells are ~2:1 tall
	CellColumns = 2

	// BoardBorder is the frame thickness around the board
	BoardBorder = 1
)

// Glyphs
const (
	GlyphFood     = '●'
	GlyphBorderH  = '─'
	GlyphBorderV  = '│'
	GlyphCornerTL = '┌'
	GlyphCornerTR = '┐'
	GlyphCornerBL = '└'
	GlyphCornerBR = '┘'
)
