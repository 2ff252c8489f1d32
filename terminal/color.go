package terminal

import (
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// palette256 holds the xterm palette entries 16-255 for nearest-match
// lookup. The 16 system colors are skipped; their appearance is
// user-configurable and unreliable for color matching.
var palette256 [256]colorful.Color

func init() {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[16+36*r+6*g+b] = colorful.Color{
					R: float64(cubeValues[r]) / 255,
					G: float64(cubeValues[g]) / 255,
					B: float64(cubeValues[b]) / 255,
				}
			}
		}
	}
	// Grayscale ramp: indices 232-255, luminance 8, 18, ..., 238
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		palette256[232+i] = colorful.Color{R: v, G: v, B: v}
	}
}

// RGBTo256 converts RGB to the nearest 256-color palette index using
// Lab-space distance over the color cube and grayscale ramp.
func RGBTo256(c RGB) uint8 {
	target := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	best := 16
	bestDist := target.DistanceLab(palette256[16])
	for i := 17; i < 256; i++ {
		if d := target.DistanceLab(palette256[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
