package constants

import "time"

// Animation Timing
const (
	// TickInterval is the frame update interval (20 Hz)
	TickInterval = 50 * time.Millisecond
)

// Column Dynamics
const (
	// TrailMinLength is the minimum trail length in rows
	TrailMinLength = 5

	// SpeedMin is the slowest fall rate in rows per tick
	SpeedMin = 0.15

	// SpeedRange is the width of the fall rate distribution above SpeedMin
	SpeedRange = 0.45

	// TrailGlyphSlack is the number of extra glyphs assigned beyond the
	// trail length so a row offset always resolves to a glyph
	TrailGlyphSlack = 5

	// RespawnMinDepth is the minimum number of rows above the top edge a
	// column restarts at
	RespawnMinDepth = 5

	// RespawnClearance is the number of rows past the trail end below the
	// screen before a column respawns
	RespawnClearance = 2
)
