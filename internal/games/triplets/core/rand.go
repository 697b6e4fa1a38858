package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness the engine needs: a uniform in-place permutation.
// *rand.Rand satisfies it, so tests pass a seeded generator.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a generator for the given seed.
// A zero seed means "use the current time".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleSymbols permutes syms in place.
func shuffleSymbols(rng Rand, syms []Symbol) {
	rng.Shuffle(len(syms), func(i, j int) {
		syms[i], syms[j] = syms[j], syms[i]
	})
}

// shufflePositions permutes positions in place.
func shufflePositions(rng Rand, positions []Position) {
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
}
