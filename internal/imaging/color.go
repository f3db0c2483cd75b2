package imaging

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult is the colour under a screen point.
type ColorResult struct {
	Point boundary.Point `json:"point"`
	Hex   string         `json:"hex"` // "#rrggbb"
	RGB   RGBColor       `json:"rgb"`
	HSL   HSLColor       `json:"hsl"`
}

// SampleColor reads the colour under p. Points outside the capture are
// clamped onto its nearest pixel, matching how scans treat them.
func SampleColor(buf *boundary.Buffer, p boundary.Point) ColorResult {
	rgb := buf.At(p)
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	h, s, l := c.Hsl()

	return ColorResult{
		Point: p,
		Hex:   c.Hex(),
		RGB:   RGBColor{R: rgb.R, G: rgb.G, B: rgb.B},
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}
