package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{14, 14, true},  // bottom-right inside
		{12, 12, true},  // center
		{15, 10, false}, // right edge (exclusive)
		{10, 15, false}, // bottom edge (exclusive)
		{9, 10, false},  // left of rect
		{10, 9, false},  // above rect
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestGridLayoutHit(t *testing.T) {
	g := GridLayout{X: 2, Y: 1, CellW: 4, CellH: 2, Gap: 1, Cols: 3, Rows: 2}

	tests := []struct {
		name     string
		x, y     int
		col, row int
		ok       bool
	}{
		{"first cell corner", 2, 1, 0, 0, true},
		{"first cell far corner", 5, 2, 0, 0, true},
		{"horizontal gap", 6, 1, 0, 0, false},
		{"second column", 7, 1, 1, 0, true},
		{"vertical gap", 2, 3, 0, 0, false},
		{"second row", 12, 4, 2, 1, true},
		{"right of grid", 16, 1, 0, 0, false},
		{"left of grid", 1, 1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := g.Hit(tt.x, tt.y)
			if ok != tt.ok || (ok && (col != tt.col || row != tt.row)) {
				t.Errorf("Hit(%d, %d) = (%d, %d, %v), expected (%d, %d, %v)",
					tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
			}
		})
	}
}

func TestGridLayoutBounds(t *testing.T) {
	g := GridLayout{X: 0, Y: 0, CellW: 3, CellH: 1, Gap: 1, Cols: 4, Rows: 3}
	b := g.Bounds()
	if b.W != 15 || b.H != 5 {
		t.Errorf("Bounds = %dx%d, expected 15x5", b.W, b.H)
	}
	if c := g.Cell(3, 2); c.X != 12 || c.Y != 4 {
		t.Errorf("Cell(3, 2) at (%d, %d), expected (12, 4)", c.X, c.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := Wrap(tt.val, tt.n); got != tt.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tt.val, tt.n, got, tt.expected)
		}
	}
}
