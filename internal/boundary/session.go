package boundary

// Session carries per-location state between repeated queries: a skip count
// for each side and the last point queried.
//
// Skip counts only apply to one spot. Moving to a different point clears
// them. The zero value is ready to use, and a nil *Session reads as all-zero
// skips.
type Session struct {
	skips   [4]int
	last    Point
	hasLast bool
}

// NewSession returns an empty Session.
func NewSession() *Session {
	return &Session{}
}

// Skip returns the skip count for dir.
func (s *Session) Skip(dir Direction) int {
	if s == nil || !dir.valid() {
		return 0
	}
	return s.skips[dir]
}

// Bump raises or lowers the skip count for one side. Counts never go below
// zero.
func (s *Session) Bump(dir Direction, increase bool) {
	if !dir.valid() {
		return
	}
	if increase {
		s.skips[dir]++
		return
	}
	if s.skips[dir] > 0 {
		s.skips[dir]--
	}
}

// ResetForNewPoint clears every skip count and records p as the last point.
func (s *Session) ResetForNewPoint(p Point) {
	s.skips = [4]int{}
	s.last = p
	s.hasLast = true
}

// MoveTo records a pointer move. Skip counts are cleared only when p differs
// from the last point; it reports whether they were.
func (s *Session) MoveTo(p Point) bool {
	if s.hasLast && s.last == p {
		return false
	}
	s.ResetForNewPoint(p)
	return true
}

// LastPoint returns the last point recorded, if any.
func (s *Session) LastPoint() (Point, bool) {
	return s.last, s.hasLast
}
