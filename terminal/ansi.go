package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll
	// when writing to the bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// Exported fragments for frame serialization
var (
	// CursorHome repositions the cursor to the origin
	CursorHome = []byte("\x1b[H")

	// SGRReset clears all text attributes
	SGRReset = []byte("\x1b[0m")
)

// AppendBoldFg appends a bold foreground color selection sequence to dst.
// Truecolor mode emits 24-bit RGB; otherwise the nearest 256-color palette
// index is used.
func AppendBoldFg(dst []byte, mode ColorMode, c RGB) []byte {
	if mode == ColorModeTrueColor {
		dst = append(dst, "\x1b[1;38;2;"...)
		dst = strconv.AppendUint(dst, uint64(c.R), 10)
		dst = append(dst, ';')
		dst = strconv.AppendUint(dst, uint64(c.G), 10)
		dst = append(dst, ';')
		dst = strconv.AppendUint(dst, uint64(c.B), 10)
		return append(dst, 'm')
	}
	dst = append(dst, "\x1b[1;38;5;"...)
	dst = strconv.AppendUint(dst, uint64(RGBTo256(c)), 10)
	return append(dst, 'm')
}
