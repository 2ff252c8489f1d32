package rain

// Cell is one rendered unit: a glyph with a color bucket, or blank.
// The zero value is blank.
type Cell struct {
	Rune  rune
	Color ColorState
}

// Blank reports whether the cell renders as empty space.
func (c Cell) Blank() bool {
	return c.Rune == 0
}

// Grid is the height x width cell buffer of the last-composited frame.
// Cells are row-major: cells[row*width + col]. The grid has a single
// owner; it is mutated only between ticks and never read during a write.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a blank grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in rows.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.cells[row*g.width+col]
}

// Set writes the cell at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[row*g.width+col] = c
}
