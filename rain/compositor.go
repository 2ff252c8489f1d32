package rain

import "math/rand/v2"

// Compositor owns one Column per terminal column and the shared cell grid.
// Each Step blanks every column's pre-advance footprint, advances the
// column, then draws its new footprint, so vacated rows are cleared even
// though the head has moved.
type Compositor struct {
	width   int
	height  int
	pool    *SymbolPool
	rng     *rand.Rand
	columns []Column
	grid    *Grid
}

// NewCompositor builds columns and a blank grid for the given dimensions.
// Dimension changes are a full teardown: no in-flight drop state migrates
// across a resize.
func NewCompositor(width, height int, pool *SymbolPool, rng *rand.Rand) *Compositor {
	c := &Compositor{
		width:   width,
		height:  height,
		pool:    pool,
		rng:     rng,
		columns: make([]Column, width),
		grid:    NewGrid(width, height),
	}
	for x := range c.columns {
		c.columns[x] = NewColumn(height, pool, rng)
	}
	return c
}

// Grid returns the composited frame buffer.
func (c *Compositor) Grid() *Grid {
	return c.grid
}

// Step advances the animation by one tick.
func (c *Compositor) Step() {
	for x := range c.columns {
		col := &c.columns[x]
		c.blankColumn(col, x)
		col.Advance(c.height, c.pool, c.rng)
		c.drawColumn(col, x)
	}
}

// blankColumn clears the rows the column occupied before this tick's
// advance.
func (c *Compositor) blankColumn(col *Column, x int) {
	top, bottom, visible := col.OccupiedRows(c.height)
	if !visible {
		return
	}
	for row := top; row <= bottom; row++ {
		c.grid.Set(row, x, Cell{})
	}
}

// drawColumn writes the column's current footprint into the grid.
func (c *Compositor) drawColumn(col *Column, x int) {
	top, bottom, visible := col.OccupiedRows(c.height)
	if !visible {
		return
	}
	headRow := col.HeadRow()
	for row := top; row <= bottom; row++ {
		dist := headRow - row
		c.grid.Set(row, x, Cell{
			Rune:  col.GlyphAt(dist),
			Color: ColorOf(dist, col.Length(), dist == 0),
		})
	}
}
