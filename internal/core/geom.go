// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies on Bubble Tea to keep game logic
// pure and testable.
package core

// Rect represents an axis-aligned box on the screen, used for layout and
// pointer hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// GridLayout maps a Cols x Rows grid of equally sized cells onto the screen.
// Gap is the number of blank columns/rows between neighbouring cells.
type GridLayout struct {
	X, Y  int
	CellW int
	CellH int
	Gap   int
	Cols  int
	Rows  int
}

// Cell returns the screen rectangle of grid cell (col, row).
func (g GridLayout) Cell(col, row int) Rect {
	return Rect{
		X: g.X + col*(g.CellW+g.Gap),
		Y: g.Y + row*(g.CellH+g.Gap),
		W: g.CellW,
		H: g.CellH,
	}
}

// Bounds returns the rectangle covering the whole grid.
func (g GridLayout) Bounds() Rect {
	if g.Cols == 0 || g.Rows == 0 {
		return Rect{X: g.X, Y: g.Y}
	}
	return Rect{
		X: g.X,
		Y: g.Y,
		W: g.Cols*g.CellW + (g.Cols-1)*g.Gap,
		H: g.Rows*g.CellH + (g.Rows-1)*g.Gap,
	}
}

// Hit returns the grid cell under screen point (x, y).
// Points in the gaps or outside the grid report false.
func (g GridLayout) Hit(x, y int) (col, row int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	col = (x - g.X) / (g.CellW + g.Gap)
	row = (y - g.Y) / (g.CellH + g.Gap)
	if col >= g.Cols || row >= g.Rows {
		return 0, 0, false
	}
	if !g.Cell(col, row).Contains(x, y) {
		return 0, 0, false
	}
	return col, row, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n) so cursors can cycle past either edge.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
