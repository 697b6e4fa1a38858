package core

// ShuffleBoard redistributes every symbol still on the board. Each position
// keeps its stack height; which symbol sits where, and at what depth, is
// re-randomized. Positions are refilled in a shuffled order.
func ShuffleBoard(b *Board, rng Rand) {
	positions := b.Positions()
	heights := make(map[Position]int, len(positions))
	items := make([]Symbol, 0, b.Remaining())
	for _, p := range positions {
		heights[p] = b.StackHeight(p)
		items = append(items, b.stacks[b.index(p)]...)
	}

	shuffleSymbols(rng, items)
	shufflePositions(rng, positions)

	for _, p := range positions {
		h := heights[p]
		stack := make([]Symbol, 0, h)
		for range h {
			if len(items) == 0 {
				break
			}
			stack = append(stack, items[len(items)-1])
			items = items[:len(items)-1]
		}
		b.setStack(p, stack)
	}
}
