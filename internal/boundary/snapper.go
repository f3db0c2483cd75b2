package boundary

import "math"

const (
	// DefaultSnapSamples is the number of rays cast from each side of a drag
	// rectangle.
	DefaultSnapSamples = 7

	// minSideHits is the number of rays per side that must find an edge.
	minSideHits = 2
)

// SnapOptions controls SnapRect.
type SnapOptions struct {
	// Samples is the number of rays per side. Zero means DefaultSnapSamples.
	Samples int

	Tolerance uint8
}

// SnapRect shrinks r onto the content it brackets.
//
// Each side casts Samples rays, evenly spaced along the side and away from
// its corners, inward toward the opposite side for at most the rectangle's
// span. A ray stops at the first pixel that differs from the colour where it
// started. Every side needs at least two hits; the outermost hit per side
// wins, giving the tightest box that still holds everything detected.
//
// ok is false when a side is under-constrained or the result is degenerate.
func (b *Buffer) SnapRect(r Rect, opts SnapOptions) (snapped Rect, ok bool) {
	if b.Empty() || r.Width <= 0 || r.Height <= 0 {
		return Rect{}, false
	}
	n := opts.Samples
	if n <= 0 {
		n = DefaultSnapSamples
	}

	x0, y0, x1, y1 := b.pixelSpan(r)
	scan := ScanOptions{Tolerance: opts.Tolerance}

	// Rows sampled by the left and right rays, columns by the top and bottom.
	rows := samplePositions(y0, y1, n)
	cols := samplePositions(x0, x1, n)

	var hits [4][]int
	for _, y := range rows {
		if e, _, found := b.walk(x0, y, Right, scan, x1-x0); found {
			hits[Left] = append(hits[Left], e)
		}
		if e, _, found := b.walk(x1, y, Left, scan, x1-x0); found {
			hits[Right] = append(hits[Right], e)
		}
	}
	for _, x := range cols {
		if e, _, found := b.walk(x, y0, Down, scan, y1-y0); found {
			hits[Up] = append(hits[Up], e)
		}
		if e, _, found := b.walk(x, y1, Up, scan, y1-y0); found {
			hits[Down] = append(hits[Down], e)
		}
	}

	for _, h := range hits {
		if len(h) < minSideHits {
			return Rect{}, false
		}
	}

	left := b.toScreenX(minOf(hits[Left]))
	right := b.toScreenX(maxOf(hits[Right]))
	top := b.toScreenY(minOf(hits[Up]))
	bottom := b.toScreenY(maxOf(hits[Down]))
	if left >= right || top >= bottom {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// pixelSpan returns the first and last pixel rows and columns inside r,
// clamped to the raster.
func (b *Buffer) pixelSpan(r Rect) (x0, y0, x1, y1 int) {
	x0, y0 = b.pixelOf(Point{X: r.X, Y: r.Y})
	x1 = int(math.Ceil((r.X+r.Width-b.origin.X)*b.scale)) - 1
	y1 = int(math.Ceil((r.Y+r.Height-b.origin.Y)*b.scale)) - 1
	x1 = clamp(x1, x0, b.width-1)
	y1 = clamp(y1, y0, b.height-1)
	return x0, y0, x1, y1
}

// samplePositions spreads n positions over [lo, hi] at (i+1)/(n+1) of the
// span so that none lands on a corner.
func samplePositions(lo, hi, n int) []int {
	out := make([]int, 0, n)
	span := float64(hi - lo + 1)
	for i := 0; i < n; i++ {
		out = append(out, lo+int(span*float64(i+1)/float64(n+1)))
	}
	return out
}

func minOf(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

func maxOf(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}
