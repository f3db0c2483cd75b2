package boundary

import (
	"fmt"
	"math"
	"strings"
)

// StabilizationWindow is the number of consecutive pixels that must agree
// with a candidate colour before it replaces the reference colour while
// skipping past an edge.
const StabilizationWindow = 3

// Direction is one of the four cardinal scan axes.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every axis in a fixed order.
var Directions = [4]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "left", "right", "up"/"top" and "down"/"bottom".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up", "top":
		return Up, nil
	case "down", "bottom":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction: %q", s)
}

func (d Direction) valid() bool { return d >= Left && d <= Down }

// step returns the per-pixel increment along the axis.
func (d Direction) step() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) horizontal() bool { return d == Left || d == Right }

func (d Direction) negative() bool { return d == Left || d == Up }

// ScanOptions controls a single directional scan.
type ScanOptions struct {
	// Tolerance is the largest per-channel delta still treated as the same
	// region.
	Tolerance uint8

	// Skip is the number of confirmed edges to pass before reporting one.
	Skip int

	// AbsorbBorder extends the reported edge over a hairline border pixel.
	AbsorbBorder bool
}

// EdgeHit is the result of a scan that found an edge.
type EdgeHit struct {
	// Distance from the query point to the edge, in screen units.
	Distance float64 `json:"distance"`

	// ScreenPosition is the absolute screen coordinate of the edge on the
	// scanned axis (X for left/right, Y for up/down).
	ScreenPosition float64 `json:"screen_position"`

	// BorderAbsorbed is set when a hairline border was folded into the edge.
	BorderAbsorbed bool `json:"border_absorbed"`
}

// Scan walks from a screen point along dir and returns the first edge that
// survives opts, or nil when the walk leaves the raster first.
//
// The walk compares each pixel against a reference colour taken at the start.
// When opts.Skip is positive, each edge crossed puts the scanner into a
// transition state in which a new region must hold steady for
// StabilizationWindow pixels (within half the tolerance) before it becomes the
// reference and counts as a skipped edge. A transition that settles back onto
// the previous region is noise and is not counted, so a hairline divider
// drawn over a uniform background is passed over while skipping rather than
// counted as an edge of its own.
func (b *Buffer) Scan(from Point, dir Direction, opts ScanOptions) *EdgeHit {
	if b.Empty() || !dir.valid() {
		return nil
	}
	x, y := b.pixelOf(from)
	edge, absorbed, ok := b.walk(x, y, dir, opts, max(b.width, b.height))
	if !ok {
		return nil
	}

	start := x
	toScreen := b.toScreenX
	if !dir.horizontal() {
		start = y
		toScreen = b.toScreenY
	}
	return &EdgeHit{
		Distance:       math.Abs(float64(edge-start)) / b.scale,
		ScreenPosition: toScreen(edge),
		BorderAbsorbed: absorbed,
	}
}

// walk returns the pixel-grid boundary of the reported edge along the scan
// axis, taking at most limit steps. For negative directions the boundary sits
// one pixel nearer the start than the first differing pixel.
func (b *Buffer) walk(x, y int, dir Direction, opts ScanOptions, limit int) (edge int, absorbed, ok bool) {
	dx, dy := dir.step()
	stabTol := opts.Tolerance / 2
	ref := b.pixel(x, y)

	var (
		confirmed    int
		inTransition bool
		hasCandidate bool
		candidate    RGB
		run          int
	)

	for i := 1; i <= limit; i++ {
		cx, cy := x+dx*i, y+dy*i
		if !b.inside(cx, cy) {
			return 0, false, false
		}
		c := b.pixel(cx, cy)

		if inTransition {
			if !hasCandidate || c.delta(candidate) > stabTol {
				candidate, hasCandidate, run = c, true, 1
			} else {
				run++
			}
			if run >= StabilizationWindow {
				if candidate.delta(ref) > opts.Tolerance {
					ref = candidate
					confirmed++
				}
				inTransition, hasCandidate = false, false
			}
			continue
		}

		if c.delta(ref) <= opts.Tolerance {
			continue
		}
		if confirmed < opts.Skip {
			inTransition = true
			continue
		}

		if opts.AbsorbBorder {
			cx, cy, absorbed = b.absorb(cx, cy, dx, dy, c, opts.Tolerance)
		}
		edge = cx
		if !dir.horizontal() {
			edge = cy
		}
		if dir.negative() {
			edge++
		}
		return edge, absorbed, true
	}
	return 0, false, false
}

// absorb peeks one screen unit past the edge pixel. If the colour changes
// again there, the edge pixel is a hairline border and the edge moves to the
// peeked pixel.
func (b *Buffer) absorb(x, y, dx, dy int, edgeColor RGB, tol uint8) (int, int, bool) {
	n := max(int(math.Round(b.scale)), 1)
	px, py := x+dx*n, y+dy*n
	if !b.inside(px, py) {
		return x, y, false
	}
	if b.pixel(px, py).delta(edgeColor) > tol {
		return px, py, true
	}
	return x, y, false
}
