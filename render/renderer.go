// Package render serializes a composited cell grid into a single
// escape-coded frame write per tick.
package render

import (
	"io"

	"github.com/lixenwraith/rainfall/rain"
	"github.com/lixenwraith/rainfall/terminal"
)

// Trail palette. The leader is the palest bucket; the trail brightens with
// distance behind it.
var stateColors = [...]terminal.RGB{
	rain.ColorDim:    {R: 0, G: 64, B: 0},
	rain.ColorMid:    {R: 0, G: 102, B: 0},
	rain.ColorMain:   {R: 0, G: 224, B: 0},
	rain.ColorLeader: {R: 224, G: 255, B: 224},
}

// Renderer turns a grid into one output write per tick: cursor-home, then
// each row's cells left to right. Blank cells emit a single space;
// colored cells emit a bold color-select sequence, the glyph, and a reset.
// Color sequences are resolved once per color bucket at construction, so
// frame serialization does no formatting work.
type Renderer struct {
	out    io.Writer
	colors [len(stateColors)][]byte
	buf    []byte
}

// New creates a renderer writing frames to out with the given color mode.
func New(out io.Writer, mode terminal.ColorMode) *Renderer {
	r := &Renderer{out: out}
	for state, rgb := range stateColors {
		if rain.ColorState(state) == rain.ColorBlank {
			continue
		}
		r.colors[state] = terminal.AppendBoldFg(nil, mode, rgb)
	}
	return r
}

// Frame serializes the grid and writes it in a single call. Rows are
// separated by a raw-mode newline (CR LF) except after the last row.
func (r *Renderer) Frame(g *rain.Grid) error {
	b := r.buf[:0]
	b = append(b, terminal.CursorHome...)

	height, width := g.Height(), g.Width()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cell := g.At(row, col)
			if cell.Blank() {
				b = append(b, ' ')
				continue
			}
			b = append(b, r.colors[cell.Color]...)
			b = appendRune(b, cell.Rune)
			b = append(b, terminal.SGRReset...)
		}
		if row < height-1 {
			// Raw mode does not translate LF, so the carriage return is
			// explicit
			b = append(b, '\r', '\n')
		}
	}

	r.buf = b
	_, err := r.out.Write(b)
	return err
}

func appendRune(b []byte, r rune) []byte {
	if r < 0x80 {
		return append(b, byte(r))
	}
	return append(b, string(r)...)
}
