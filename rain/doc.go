// Package rain implements the falling-glyph animation core: the per-column
// drop state machine, the trail color gradient and the frame compositor
// that turns column state into a cell grid. The package is pure — all
// randomness is injected and no terminal I/O happens here.
package rain
