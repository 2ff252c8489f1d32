package rain

import (
	"math/rand/v2"

	"github.com/mattn/go-runewidth"
)

// Halfwidth katakana block, the bulk of the glyph pool. The fullwidth
// katakana range renders two cells wide and would tear the column layout.
const (
	glyphRangeLo = 0xFF66 // ｦ
	glyphRangeHi = 0xFF9D // ﾝ
)

var poolDigits = []rune("0123456789")
var poolPunctuation = []rune(`:."=*+-<>|`)

// SymbolPool is an immutable ordered set of single-cell glyphs.
type SymbolPool struct {
	glyphs []rune
}

// NewSymbolPool builds the pool from the katakana range, decimal digits and
// punctuation. Candidates that don't occupy exactly one display cell are
// rejected.
func NewSymbolPool() *SymbolPool {
	p := &SymbolPool{}
	for r := rune(glyphRangeLo); r <= glyphRangeHi; r++ {
		p.add(r)
	}
	for _, r := range poolDigits {
		p.add(r)
	}
	for _, r := range poolPunctuation {
		p.add(r)
	}
	return p
}

func (p *SymbolPool) add(r rune) {
	if runewidth.RuneWidth(r) != 1 {
		return
	}
	p.glyphs = append(p.glyphs, r)
}

// Draw returns a uniformly random glyph from the pool.
func (p *SymbolPool) Draw(rng *rand.Rand) rune {
	return p.glyphs[rng.IntN(len(p.glyphs))]
}

// Len returns the pool size.
func (p *SymbolPool) Len() int {
	return len(p.glyphs)
}
