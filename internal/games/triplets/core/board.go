package core

import "fmt"

// Position identifies one board column by (Col, Row).
type Position struct {
	Col int
	Row int
}

// P is a convenience constructor for Position.
func P(col, row int) Position {
	return Position{Col: col, Row: row}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Board is the live mapping from every position to its stack. Stacks are
// ordered bottom to top; only the top of each stack is observable or
// removable from outside the package.
type Board struct {
	w      int
	h      int
	stacks [][]Symbol // indexed by row*w + col
}

// NewBoard creates an empty board with w columns and h rows.
func NewBoard(w, h int) *Board {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Board{
		w:      w,
		h:      h,
		stacks: make([][]Symbol, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// InBounds returns true if the position lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < b.w && p.Row >= 0 && p.Row < b.h
}

func (b *Board) index(p Position) int {
	return p.Row*b.w + p.Col
}

// TopAt returns the top symbol at p, or None when the stack is empty or p
// is off the board.
func (b *Board) TopAt(p Position) Symbol {
	if !b.InBounds(p) {
		return None
	}
	stack := b.stacks[b.index(p)]
	if len(stack) == 0 {
		return None
	}
	return stack[len(stack)-1]
}

// StackHeight returns the number of symbols stacked at p.
func (b *Board) StackHeight(p Position) int {
	if !b.InBounds(p) {
		return 0
	}
	return len(b.stacks[b.index(p)])
}

// PopTop removes and returns the top symbol at p.
// Popping an empty stack is a no-op that returns None.
func (b *Board) PopTop(p Position) Symbol {
	if !b.InBounds(p) {
		return None
	}
	i := b.index(p)
	stack := b.stacks[i]
	if len(stack) == 0 {
		return None
	}
	top := stack[len(stack)-1]
	b.stacks[i] = stack[:len(stack)-1]
	return top
}

// IsFullyCleared returns true if every stack is empty.
func (b *Board) IsFullyCleared() bool {
	for _, s := range b.stacks {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// Positions returns every board position in column-major order.
func (b *Board) Positions() []Position {
	out := make([]Position, 0, b.w*b.h)
	for col := range b.w {
		for row := range b.h {
			out = append(out, Position{Col: col, Row: row})
		}
	}
	return out
}

// Heights returns the stack height of every position, ordered as Positions.
func (b *Board) Heights() []int {
	positions := b.Positions()
	heights := make([]int, len(positions))
	for i, p := range positions {
		heights[i] = b.StackHeight(p)
	}
	return heights
}

// Remaining returns the number of symbols left on the board.
func (b *Board) Remaining() int {
	total := 0
	for _, s := range b.stacks {
		total += len(s)
	}
	return total
}

// Counts returns the multiset of all symbols still on the board.
func (b *Board) Counts() map[Symbol]int {
	counts := make(map[Symbol]int)
	for _, s := range b.stacks {
		for _, sym := range s {
			counts[sym]++
		}
	}
	return counts
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		w:      b.w,
		h:      b.h,
		stacks: make([][]Symbol, len(b.stacks)),
	}
	for i, s := range b.stacks {
		if len(s) > 0 {
			clone.stacks[i] = append([]Symbol(nil), s...)
		}
	}
	return clone
}

// Equal returns true if both boards have the same shape and identical stacks.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.w != other.w || b.h != other.h {
		return false
	}
	for i := range b.stacks {
		if len(b.stacks[i]) != len(other.stacks[i]) {
			return false
		}
		for j := range b.stacks[i] {
			if b.stacks[i][j] != other.stacks[i][j] {
				return false
			}
		}
	}
	return true
}

// setStack replaces the stack at p. Used by placement and shuffle.
func (b *Board) setStack(p Position, stack []Symbol) {
	if !b.InBounds(p) {
		return
	}
	b.stacks[b.index(p)] = stack
}
