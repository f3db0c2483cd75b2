package boundary

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
)

// Point is a location in screen units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RGB holds the colour channels of one pixel. Alpha never takes part in
// comparisons.
type RGB struct {
	R, G, B uint8
}

// delta returns the largest per-channel difference between two colours.
func (c RGB) delta(o RGB) uint8 {
	return max(absDiff(c.R, o.R), absDiff(c.G, o.G), absDiff(c.B, o.B))
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Buffer is an immutable RGBA8 capture of part of the screen.
//
// The raster covers Origin() in screen units; Scale() is the number of device
// pixels per screen unit. One Buffer is built per overlay activation and
// shared read-only by every query made during it.
type Buffer struct {
	width  int
	height int
	pix    []uint8
	stride int
	origin Rect
	scale  float64
}

// NewBuffer copies img into a contiguous RGBA8 raster covering origin.
//
// The scale factor is derived as pixel width / origin.Width. When origin has
// no positive size the raster is treated as its own screen space: origin
// becomes the pixel bounds at (0,0) and the scale is 1.
//
// A nil or zero-sized image still produces a Buffer; it reports no edges.
func NewBuffer(img image.Image, origin Rect) *Buffer {
	var w, h int
	if img != nil {
		w, h = img.Bounds().Dx(), img.Bounds().Dy()
	}
	if origin.Width <= 0 || origin.Height <= 0 {
		origin = Rect{Width: float64(w), Height: float64(h)}
	}

	b := &Buffer{width: w, height: h, origin: origin, scale: 1}
	if w == 0 || h == 0 {
		return b
	}

	rgba := clone.AsRGBA(img)
	b.pix = rgba.Pix
	b.stride = rgba.Stride
	b.scale = float64(w) / origin.Width
	return b
}

// Width returns the raster width in device pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the raster height in device pixels.
func (b *Buffer) Height() int { return b.height }

// Origin returns the screen rectangle covered by the raster.
func (b *Buffer) Origin() Rect { return b.origin }

// Scale returns the number of device pixels per screen unit.
func (b *Buffer) Scale() float64 { return b.scale }

// Empty reports whether the capture was degenerate.
func (b *Buffer) Empty() bool { return b.width == 0 || b.height == 0 }

// At returns the colour under a screen point. Points outside the raster are
// clamped to the nearest pixel. An empty Buffer returns black.
func (b *Buffer) At(p Point) RGB {
	if b.Empty() {
		return RGB{}
	}
	x, y := b.pixelOf(p)
	return b.pixel(x, y)
}

// pixelOf maps a screen point to a clamped pixel index.
func (b *Buffer) pixelOf(p Point) (int, int) {
	x := int(math.Floor((p.X - b.origin.X) * b.scale))
	y := int(math.Floor((p.Y - b.origin.Y) * b.scale))
	return clamp(x, 0, b.width-1), clamp(y, 0, b.height-1)
}

// pixel reads the colour at a pixel index. Callers keep indices in range.
func (b *Buffer) pixel(x, y int) RGB {
	i := y*b.stride + x*4
	return RGB{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// toScreenX converts a pixel-grid column boundary to screen units.
func (b *Buffer) toScreenX(px int) float64 {
	return b.origin.X + float64(px)/b.scale
}

// toScreenY converts a pixel-grid row boundary to screen units.
func (b *Buffer) toScreenY(py int) float64 {
	return b.origin.Y + float64(py)/b.scale
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
