// Package core provides the level generation and match engine for Triplets.
// This package is UI-agnostic and deterministic given a seeded Rand.
package core

// Symbol identifies one tile face. The set is closed: the base shapes, the
// extra shapes unlocked at higher levels, and Wildcard.
type Symbol uint8

const (
	// None is the "empty" sentinel returned for empty stacks. It is never
	// stored on a board or in the preview.
	None Symbol = iota
	Circle
	Triangle
	Square
	Diamond
	Pentagon
	Hexagon
	Cross
	Plus
	Oval
	Trapezoid
	FourStar
	FiveStar
	HollowCircle
	Wildcard
)

// BaseSymbols is the pool available from level 1, in pool index order.
var BaseSymbols = []Symbol{
	Circle, Triangle, Square, Diamond, Pentagon,
	Hexagon, Cross, Plus, Oval, Trapezoid,
}

// ExtraSymbols are introduced one per level starting at the matching
// entry of extraUnlockLevels.
var ExtraSymbols = []Symbol{FourStar, FiveStar, HollowCircle}

var extraUnlockLevels = []int{5, 6, 7}

var symbolNames = map[Symbol]string{
	None:         "none",
	Circle:       "circle",
	Triangle:     "triangle",
	Square:       "square",
	Diamond:      "diamond",
	Pentagon:     "pentagon",
	Hexagon:      "hexagon",
	Cross:        "cross",
	Plus:         "plus",
	Oval:         "oval",
	Trapezoid:    "trapezoid",
	FourStar:     "four_star",
	FiveStar:     "five_star",
	HollowCircle: "hollow_circle",
	Wildcard:     "wildcard",
}

var symbolGlyphs = map[Symbol]rune{
	None:         ' ',
	Circle:       '●',
	Triangle:     '▲',
	Square:       '■',
	Diamond:      '◆',
	Pentagon:     '⬟',
	Hexagon:      '⬢',
	Cross:        '✖',
	Plus:         '✚',
	Oval:         '⬬',
	Trapezoid:    '⏢',
	FourStar:     '✦',
	FiveStar:     '★',
	HollowCircle: '○',
	Wildcard:     '*',
}

// String returns the symbol's name.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "unknown"
}

// Glyph returns the rune used to draw the symbol in a terminal.
func (s Symbol) Glyph() rune {
	if g, ok := symbolGlyphs[s]; ok {
		return g
	}
	return '?'
}

// Valid reports whether s is a real tile (anything but None or out of range).
func (s Symbol) Valid() bool {
	return s > None && s <= Wildcard
}

// IsWildcard reports whether s is the wildcard tile.
func (s Symbol) IsWildcard() bool {
	return s == Wildcard
}

// IsExtra reports whether s is one of the late-unlock shapes.
func (s Symbol) IsExtra() bool {
	for _, e := range ExtraSymbols {
		if s == e {
			return true
		}
	}
	return false
}

// SymbolPool returns the symbols usable at the given level: the base pool
// followed by every extra unlocked at or below that level.
func SymbolPool(level int) []Symbol {
	pool := make([]Symbol, 0, len(BaseSymbols)+len(ExtraSymbols))
	pool = append(pool, BaseSymbols...)
	for i, at := range extraUnlockLevels {
		if level >= at {
			pool = append(pool, ExtraSymbols[i])
		}
	}
	return pool
}

// UnlockedAt returns the extra symbol first introduced at level, if any.
func UnlockedAt(level int) (Symbol, bool) {
	for i, at := range extraUnlockLevels {
		if level == at {
			return ExtraSymbols[i], true
		}
	}
	return None, false
}
