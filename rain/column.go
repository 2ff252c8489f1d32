package rain

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/rainfall/constants"
)

// Column is the drop state of one terminal column. head advances
// monotonically between respawns; the fractional part of the fall rate
// accumulates in carry so sub-row speeds still move the head by whole rows.
type Column struct {
	head   float64 // row position of the leading edge, may be off-screen
	length int     // trail rows above the head
	speed  float64 // rows per tick
	carry  float64 // fractional remainder, 0 <= carry < 1 between ticks
	glyphs []rune  // fixed per lifetime, length+TrailGlyphSlack entries
}

// NewColumn creates a column in a fresh off-screen starting state.
func NewColumn(height int, pool *SymbolPool, rng *rand.Rand) Column {
	var c Column
	c.respawn(height, pool, rng)
	return c
}

// respawn re-rolls the column's lifetime state: trail length, glyph
// assignment, fall rate, and a head position above the visible area.
func (c *Column) respawn(height int, pool *SymbolPool, rng *rand.Rand) {
	c.length = constants.TrailMinLength + rng.IntN(height)
	c.head = -float64(rng.IntN(2*height) + constants.RespawnMinDepth)
	c.speed = constants.SpeedMin + rng.Float64()*constants.SpeedRange
	c.carry = 0

	n := c.length + constants.TrailGlyphSlack
	if cap(c.glyphs) < n {
		c.glyphs = make([]rune, n)
	} else {
		c.glyphs = c.glyphs[:n]
	}
	for i := range c.glyphs {
		c.glyphs[i] = pool.Draw(rng)
	}
}

// Advance moves the head by the integer part of the accumulated speed.
// Once the head has fully cleared the screen past its own trail the column
// respawns; a respawned column is indistinguishable in distribution from a
// freshly constructed one.
func (c *Column) Advance(height int, pool *SymbolPool, rng *rand.Rand) {
	c.carry += c.speed
	step := math.Floor(c.carry)
	c.carry -= step
	c.head += step

	if c.head > float64(height+c.length+constants.RespawnClearance) {
		c.respawn(height, pool, rng)
	}
}

// HeadRow returns the row of the leading edge, unclamped.
func (c *Column) HeadRow() int {
	return int(math.Floor(c.head))
}

// OccupiedRows returns the visible row span [top, bottom] covered by the
// drop, and whether any row is visible at all.
func (c *Column) OccupiedRows(height int) (top, bottom int, visible bool) {
	headRow := c.HeadRow()
	if headRow < 0 || headRow-c.length > height-1 {
		return 0, 0, false
	}
	bottom = headRow
	if bottom > height-1 {
		bottom = height - 1
	}
	top = headRow - c.length
	if top < 0 {
		top = 0
	}
	return top, bottom, true
}

// GlyphAt returns the glyph for a trail offset. The mapping is fixed for
// the column's current lifetime so glyph identity never flickers per frame.
func (c *Column) GlyphAt(dist int) rune {
	return c.glyphs[dist%len(c.glyphs)]
}

// Length returns the current trail length.
func (c *Column) Length() int {
	return c.length
}
