package core

import "fmt"

// Plan is the unshuffled symbol multiset for a level, with the numbers it
// was derived from.
type Plan struct {
	Level     int
	Dims      Dimensions
	Pool      []Symbol // Symbols available at this level
	Chosen    []Symbol // Distinct-symbol slots, cycled through Pool
	Triplets  int      // Volume / 3
	Remainder int      // Volume % 3
	Flat      []Symbol // Construction order, len == Dims.Volume()
}

// Level is a generated level ready to play.
type Level struct {
	Number int
	Dims   Dimensions
	Pool   []Symbol
	Chosen []Symbol
	Board  *Board
}

// chooseSymbols returns n symbols cycling through pool in index order.
func chooseSymbols(n int, pool []Symbol) []Symbol {
	syms := make([]Symbol, 0, n)
	for i := 0; len(syms) < n; i++ {
		syms = append(syms, pool[i%len(pool)])
	}
	return syms
}

// BuildMultiset computes the triplet-complete symbol list for a level.
//
// Each newly unlocked (extra) symbol gets exactly one triplet so new shapes
// stay rare; the remaining triplets go round-robin to the base symbols, or
// to the extras if no base symbol was chosen. Remainder singles cycle
// through the chosen list starting at the triplet count.
func BuildMultiset(level int) (Plan, error) {
	if level < 1 {
		return Plan{}, ErrInvalidLevel
	}

	dims := DimensionsFor(level)
	total := dims.Volume()
	triplets := total / 3
	remainder := total % 3

	distinct := max(1, min(triplets, dims.Columns()))
	pool := SymbolPool(level)
	chosen := chooseSymbols(distinct, pool)

	var fresh, base []Symbol
	for _, s := range chosen {
		if s.IsExtra() {
			fresh = append(fresh, s)
		} else {
			base = append(base, s)
		}
	}

	flat := make([]Symbol, 0, total)
	remaining := triplets
	for _, s := range fresh {
		flat = append(flat, s, s, s)
		remaining--
	}

	target := base
	if len(target) == 0 {
		target = fresh
	}
	if len(target) > 0 {
		for i := 0; i < remaining; i++ {
			s := target[i%len(target)]
			flat = append(flat, s, s, s)
		}
	}

	for j := range remainder {
		if len(flat) > 0 {
			flat = append(flat, chosen[(triplets+j)%len(chosen)])
		} else {
			flat = append(flat, chosen[0])
		}
	}

	for len(flat) < total {
		flat = append(flat, chosen[0])
	}
	flat = flat[:total]

	return Plan{
		Level:     level,
		Dims:      dims,
		Pool:      pool,
		Chosen:    chosen,
		Triplets:  triplets,
		Remainder: remainder,
		Flat:      flat,
	}, nil
}

// CheckMultiset verifies that flat fills a board of the given dimensions and
// that every symbol occurs a multiple of three times, apart from exactly
// Volume%3 leftover singles.
func CheckMultiset(flat []Symbol, dims Dimensions) error {
	total := dims.Volume()
	if len(flat) != total {
		return invariantf("VOLUME", "multiset has %d symbols, board holds %d", len(flat), total)
	}

	counts := make(map[Symbol]int)
	for _, s := range flat {
		if !s.Valid() {
			return invariantf("INVALID_SYMBOL", "multiset contains %s", s)
		}
		counts[s]++
	}

	leftover := 0
	for _, n := range counts {
		leftover += n % 3
	}
	if leftover != total%3 {
		return invariantf("TRIPLETS", "%d leftover singles, expected %d", leftover, total%3)
	}
	return nil
}

// Place distributes flat onto a fresh board. Positions are visited in a
// shuffled order; the first pass fills every top slot from the back of
// flat, the second fills the lower slots bottom-up. An exhausted list is
// padded with Wildcard. flat is consumed.
func Place(flat []Symbol, dims Dimensions, rng Rand) *Board {
	board := NewBoard(dims.W, dims.H)
	positions := board.Positions()
	shufflePositions(rng, positions)

	pop := func() Symbol {
		if len(flat) == 0 {
			return Wildcard
		}
		s := flat[len(flat)-1]
		flat = flat[:len(flat)-1]
		return s
	}

	stacks := make(map[Position][]Symbol, len(positions))
	for _, p := range positions {
		stack := make([]Symbol, dims.D)
		if dims.D > 0 {
			stack[dims.D-1] = pop()
		}
		stacks[p] = stack
	}
	for _, p := range positions {
		stack := stacks[p]
		for z := 0; z < dims.D-1; z++ {
			stack[z] = pop()
		}
		board.setStack(p, stack)
	}
	return board
}

// Generate builds, verifies, shuffles and places the symbols for a level.
func Generate(level int, rng Rand) (*Level, error) {
	plan, err := BuildMultiset(level)
	if err != nil {
		return nil, err
	}
	if err := CheckMultiset(plan.Flat, plan.Dims); err != nil {
		return nil, fmt.Errorf("level %d: %w", level, err)
	}

	flat := append([]Symbol(nil), plan.Flat...)
	shuffleSymbols(rng, flat)
	want := countSymbols(flat)

	board := Place(flat, plan.Dims, rng)
	if err := checkPlacement(board, want); err != nil {
		return nil, fmt.Errorf("level %d: %w", level, err)
	}

	return &Level{
		Number: level,
		Dims:   plan.Dims,
		Pool:   plan.Pool,
		Chosen: plan.Chosen,
		Board:  board,
	}, nil
}

func countSymbols(syms []Symbol) map[Symbol]int {
	counts := make(map[Symbol]int)
	for _, s := range syms {
		counts[s]++
	}
	return counts
}

// checkPlacement verifies the board holds exactly the multiset want.
func checkPlacement(b *Board, want map[Symbol]int) error {
	got := b.Counts()
	if len(got) != len(want) {
		return invariantf("PLACEMENT", "board has %d distinct symbols, expected %d", len(got), len(want))
	}
	for s, n := range want {
		if got[s] != n {
			return invariantf("PLACEMENT", "board has %d x %s, expected %d", got[s], s, n)
		}
	}
	return nil
}
