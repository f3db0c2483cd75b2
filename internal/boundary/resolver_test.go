package boundary

import (
	"image/color"
	"strings"
	"testing"
)

// framedObject is a white object spanning columns 13..27 with red hairlines
// at 12 and 28 and black outside. Seen from column 20, plain scans measure 7
// and 8; absorbing scans measure 8 and 9.
func framedObject(x int) color.RGBA {
	switch {
	case x == 12 || x == 28:
		return red
	case x > 12 && x < 28:
		return white
	}
	return black
}

func TestQueryPoint_Modes(t *testing.T) {
	b := NewBuffer(columnImage(40, 10, 1, framedObject), Rect{})
	p := Point{X: 20, Y: 5}

	tests := []struct {
		name      string
		mode      CorrectionMode
		wantLeft  float64
		wantRight float64
		absLeft   bool
		absRight  bool
	}{
		{"none", None, 7, 8, false, false},
		{"include", Include, 8, 9, true, true},
		// (abs,abs)=17 is off grid, (abs,normal)=16 lands on it.
		{"smart", Smart, 8, 8, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges := b.QueryPoint(p, PointOptions{Tolerance: 1, Mode: tt.mode}, nil)
			if edges.Query != p {
				t.Errorf("Query: got %v, want %v", edges.Query, p)
			}
			if edges.Left == nil || edges.Right == nil {
				t.Fatalf("missing horizontal edges: %+v", edges)
			}
			if edges.Left.Distance != tt.wantLeft || edges.Left.BorderAbsorbed != tt.absLeft {
				t.Errorf("Left: got %+v, want distance %v absorbed %v", *edges.Left, tt.wantLeft, tt.absLeft)
			}
			if edges.Right.Distance != tt.wantRight || edges.Right.BorderAbsorbed != tt.absRight {
				t.Errorf("Right: got %+v, want distance %v absorbed %v", *edges.Right, tt.wantRight, tt.absRight)
			}
			if edges.Top != nil || edges.Bottom != nil {
				t.Errorf("vertical edges on a column-only image: top %+v bottom %+v", edges.Top, edges.Bottom)
			}
		})
	}
}

func TestQueryPoint_SmartGridUnitOverride(t *testing.T) {
	b := NewBuffer(columnImage(40, 10, 1, framedObject), Rect{})
	// With a grid of 17 the fully absorbed pairing wins.
	edges := b.QueryPoint(Point{X: 20, Y: 5}, PointOptions{Tolerance: 1, Mode: Smart, GridUnit: 17}, nil)
	w, ok := edges.Width()
	if !ok || w != 17 {
		t.Errorf("Width: got %v, %v, want 17", w, ok)
	}
}

func TestQueryPoint_UsesSessionSkips(t *testing.T) {
	b := NewBuffer(columnImage(30, 4, 1, bands), Rect{})
	s := NewSession()
	p := Point{X: 0, Y: 1}
	opts := PointOptions{Tolerance: 16, Mode: None}

	if got := b.QueryPoint(p, opts, s).Right.Distance; got != 6 {
		t.Fatalf("Right without skips: got %v, want 6", got)
	}
	s.Bump(Right, true)
	if got := b.QueryPoint(p, opts, s).Right.Distance; got != 12 {
		t.Errorf("Right with one skip: got %v, want 12", got)
	}
	// Skips on other sides leave the right edge alone.
	s.Bump(Left, true)
	if got := b.QueryPoint(p, opts, s).Right.Distance; got != 12 {
		t.Errorf("Right after bumping left: got %v, want 12", got)
	}
}

func TestResolvePair(t *testing.T) {
	hit := func(d float64) *EdgeHit { return &EdgeHit{Distance: d} }

	t.Run("prefers first total on grid", func(t *testing.T) {
		absA, normA := hit(9), hit(9)
		absB, normB := hit(8), hit(11)
		// (abs,abs)=17, (abs,normal)=20.
		a, b := resolvePair(absA, normA, absB, normB, 100, 100, 4)
		if a != absA || b != normB {
			t.Errorf("got (%v, %v), want (absA, normB)", a.Distance, b.Distance)
		}
	})

	t.Run("highest absorption wins ties", func(t *testing.T) {
		absA, normA := hit(8), hit(7)
		absB, normB := hit(8), hit(9)
		// (abs,abs)=16 and (normal,normal)=16 are both on grid.
		a, b := resolvePair(absA, normA, absB, normB, 100, 100, 4)
		if a != absA || b != absB {
			t.Error("expected the fully absorbed pair")
		}
	})

	t.Run("uniform totals keep absorbed pair", func(t *testing.T) {
		absA, normA := hit(5), hit(5)
		absB, normB := hit(6), hit(6)
		a, b := resolvePair(absA, normA, absB, normB, 100, 100, 4)
		if a != absA || b != absB {
			t.Error("expected the absorbed pair")
		}
	})

	t.Run("nothing on grid keeps absorbed pair", func(t *testing.T) {
		absA, normA := hit(6), hit(5)
		absB, normB := hit(6), hit(5)
		// Totals 12, 11, 11, 10: only the plain pair fits a grid of 5.
		a, b := resolvePair(absA, normA, absB, normB, 100, 100, 5)
		if a != normA || b != normB {
			t.Error("expected the plain pair for a grid of 5")
		}
		a, b = resolvePair(absA, normA, absB, normB, 100, 100, 7)
		if a != absA || b != absB {
			t.Error("expected the absorbed pair when no total is on grid")
		}
	})

	t.Run("missing side uses reach", func(t *testing.T) {
		absB, normB := hit(3), hit(2)
		// Totals: 13+3=16, 13+2=15, 16, 15 with A missing everywhere.
		a, b := resolvePair(nil, nil, absB, normB, 13, 0, 4)
		if a != nil || b != absB {
			t.Errorf("got (%v, %v), want (nil, absB)", a, b)
		}
		// A reach of 14 puts the plain pairing on the grid instead.
		a, b = resolvePair(nil, nil, absB, normB, 14, 0, 4)
		if a != nil || b != normB {
			t.Errorf("got (%v, %v), want (nil, normB)", a, b)
		}
	})

	t.Run("all missing", func(t *testing.T) {
		a, b := resolvePair(nil, nil, nil, nil, 3, 3, 4)
		if a != nil || b != nil {
			t.Error("expected nil pair")
		}
	})
}

func TestOnGrid(t *testing.T) {
	tests := []struct {
		total, grid float64
		want        bool
	}{
		{16, 4, true},
		{17, 4, false},
		{0, 4, true},
		{7.5, 2.5, true},
		{8.0000001, 4, true},
		{7.9999999, 4, true},
		{8, 0, false},
		{8, -4, false},
	}
	for _, tt := range tests {
		if got := onGrid(tt.total, tt.grid); got != tt.want {
			t.Errorf("onGrid(%v, %v): got %v, want %v", tt.total, tt.grid, got, tt.want)
		}
	}
}

func TestDirectionalEdges_Dimensions(t *testing.T) {
	e := DirectionalEdges{
		Left:  &EdgeHit{Distance: 3},
		Right: &EdgeHit{Distance: 5},
		Top:   &EdgeHit{Distance: 2},
	}
	if w, ok := e.Width(); !ok || w != 8 {
		t.Errorf("Width: got %v, %v", w, ok)
	}
	if _, ok := e.Height(); ok {
		t.Error("Height should be unavailable without a bottom edge")
	}
}

func TestParseCorrectionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    CorrectionMode
		wantErr bool
	}{
		{"", Smart, false},
		{"smart", Smart, false},
		{"Include", Include, false},
		{"none", None, false},
		{"auto", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCorrectionMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCorrectionMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseCorrectionMode(%q): got %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != strings.ToLower(tt.in) {
			t.Errorf("String: got %q", got.String())
		}
	}
}
