package core

import "fmt"

// Board growth constants. Depth saturates at MaxDepth, after which the
// plane grows one row or column per level.
const (
	BaseWidth  = 3
	BaseHeight = 3
	BaseDepth  = 1
	MaxDepth   = 3
)

// Dimensions describes a level's board: W columns by H rows, each position
// holding a stack of up to D symbols.
type Dimensions struct {
	W int
	H int
	D int
}

// Columns returns the number of board positions.
func (d Dimensions) Columns() int {
	return d.W * d.H
}

// Volume returns the total number of symbols placed on the board.
func (d Dimensions) Volume() int {
	return d.W * d.H * d.D
}

// String returns the dimensions as "WxHxD".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.W, d.H, d.D)
}

// DimensionsFor returns the board dimensions for a level (1-based).
// Depth grows first; once saturated, H grows when it has grown no more than
// W since the base, otherwise W grows. Levels below 1 return the base.
func DimensionsFor(level int) Dimensions {
	d := Dimensions{W: BaseWidth, H: BaseHeight, D: BaseDepth}
	for lvl := 1; lvl < level; lvl++ {
		switch {
		case d.D < MaxDepth:
			d.D++
		case d.H-BaseHeight <= d.W-BaseWidth:
			d.H++
		default:
			d.W++
		}
	}
	return d
}
