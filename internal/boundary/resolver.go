package boundary

import (
	"fmt"
	"math"
	"strings"
)

// DefaultGridUnit is the layout grid, in screen units, that Smart mode
// assumes when deciding whether a hairline border belongs to the measured
// object. It is a product assumption about typical UI layouts, not a property
// of the raster; override it with PointOptions.GridUnit.
const DefaultGridUnit = 4.0

// CorrectionMode selects how hairline borders are treated by QueryPoint.
type CorrectionMode int

const (
	// Smart runs absorbing and plain scans and keeps, per axis, the pairing
	// whose total lands on the layout grid.
	Smart CorrectionMode = iota
	// Include always absorbs hairline borders.
	Include
	// None never absorbs hairline borders.
	None
)

func (m CorrectionMode) String() string {
	switch m {
	case Smart:
		return "smart"
	case Include:
		return "include"
	case None:
		return "none"
	}
	return fmt.Sprintf("CorrectionMode(%d)", int(m))
}

// ParseCorrectionMode parses "smart", "include" or "none". The empty string
// selects Smart.
func ParseCorrectionMode(s string) (CorrectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "smart":
		return Smart, nil
	case "include":
		return Include, nil
	case "none":
		return None, nil
	}
	return 0, fmt.Errorf("unknown correction mode: %q", s)
}

// PointOptions controls QueryPoint.
type PointOptions struct {
	Tolerance uint8
	Mode      CorrectionMode

	// GridUnit overrides DefaultGridUnit for Smart mode. Zero means default.
	GridUnit float64
}

func (o PointOptions) gridUnit() float64 {
	if o.GridUnit > 0 {
		return o.GridUnit
	}
	return DefaultGridUnit
}

// DirectionalEdges holds the nearest edge on each side of a query point.
// A nil side means no edge was found before the raster boundary.
type DirectionalEdges struct {
	Query  Point    `json:"query"`
	Left   *EdgeHit `json:"left,omitempty"`
	Right  *EdgeHit `json:"right,omitempty"`
	Top    *EdgeHit `json:"top,omitempty"`
	Bottom *EdgeHit `json:"bottom,omitempty"`
}

// Width returns left + right distance when both sides were found.
func (e DirectionalEdges) Width() (float64, bool) {
	if e.Left == nil || e.Right == nil {
		return 0, false
	}
	return e.Left.Distance + e.Right.Distance, true
}

// Height returns top + bottom distance when both sides were found.
func (e DirectionalEdges) Height() (float64, bool) {
	if e.Top == nil || e.Bottom == nil {
		return 0, false
	}
	return e.Top.Distance + e.Bottom.Distance, true
}

// QueryPoint measures the distance from p to the nearest edge on every side.
//
// Skip counts come from s; a nil Session scans without skipping. The Session
// is only read, so callers decide when to reset it.
func (b *Buffer) QueryPoint(p Point, opts PointOptions, s *Session) DirectionalEdges {
	edges := DirectionalEdges{Query: p}
	if b.Empty() {
		return edges
	}

	scan := func(dir Direction, absorb bool) *EdgeHit {
		return b.Scan(p, dir, ScanOptions{
			Tolerance:    opts.Tolerance,
			Skip:         s.Skip(dir),
			AbsorbBorder: absorb,
		})
	}

	if opts.Mode == Include || opts.Mode == None {
		absorb := opts.Mode == Include
		edges.Left = scan(Left, absorb)
		edges.Right = scan(Right, absorb)
		edges.Top = scan(Up, absorb)
		edges.Bottom = scan(Down, absorb)
		return edges
	}

	grid := opts.gridUnit()
	reach := b.reach(p)
	edges.Left, edges.Right = resolvePair(
		scan(Left, true), scan(Left, false),
		scan(Right, true), scan(Right, false),
		reach[Left], reach[Right], grid)
	edges.Top, edges.Bottom = resolvePair(
		scan(Up, true), scan(Up, false),
		scan(Down, true), scan(Down, false),
		reach[Up], reach[Down], grid)
	return edges
}

// reach returns the distance from p's pixel to the raster boundary on each
// side, in screen units.
func (b *Buffer) reach(p Point) [4]float64 {
	x, y := b.pixelOf(p)
	return [4]float64{
		Left:  float64(x) / b.scale,
		Right: float64(b.width-x) / b.scale,
		Up:    float64(y) / b.scale,
		Down:  float64(b.height-y) / b.scale,
	}
}

// resolvePair picks one hit per side of an opposing pair. The candidates are
// tried from most to least border absorption; the first whose total dimension
// is a multiple of grid wins. If absorption changes nothing, or no total lands
// on the grid, both absorbing hits are returned.
func resolvePair(absA, normA, absB, normB *EdgeHit, reachA, reachB, grid float64) (*EdgeHit, *EdgeHit) {
	combos := [4][2]*EdgeHit{
		{absA, absB},
		{absA, normB},
		{normA, absB},
		{normA, normB},
	}

	var totals [4]float64
	for i, c := range combos {
		totals[i] = extent(c[0], reachA) + extent(c[1], reachB)
	}

	uniform := true
	for _, t := range totals[1:] {
		if !nearlyEqual(t, totals[0]) {
			uniform = false
			break
		}
	}
	if uniform {
		return absA, absB
	}

	for i, t := range totals {
		if onGrid(t, grid) {
			return combos[i][0], combos[i][1]
		}
	}
	return absA, absB
}

func extent(h *EdgeHit, reach float64) float64 {
	if h == nil {
		return reach
	}
	return h.Distance
}

const epsilon = 1e-6

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func onGrid(total, grid float64) bool {
	if grid <= 0 {
		return false
	}
	r := math.Mod(total, grid)
	return r < epsilon || grid-r < epsilon
}
