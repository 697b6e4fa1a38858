package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

func TestShuffleBoardPreservesShape(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	lvl, err := core.Generate(4, rng)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b := lvl.Board

	// Play a few moves so heights differ between positions.
	for i, p := range b.Positions() {
		if i%3 == 0 {
			b.PopTop(p)
		}
	}

	wantHeights := b.Heights()
	wantCounts := b.Counts()

	for round := 0; round < 5; round++ {
		core.ShuffleBoard(b, rng)

		gotHeights := b.Heights()
		for i := range wantHeights {
			if gotHeights[i] != wantHeights[i] {
				t.Fatalf("round %d: height %d changed from %d to %d", round, i, wantHeights[i], gotHeights[i])
			}
		}
		gotCounts := b.Counts()
		if len(gotCounts) != len(wantCounts) {
			t.Fatalf("round %d: symbol set changed: %v vs %v", round, gotCounts, wantCounts)
		}
		for s, n := range wantCounts {
			if gotCounts[s] != n {
				t.Fatalf("round %d: %v count changed from %d to %d", round, s, n, gotCounts[s])
			}
		}
	}
}

func TestShuffleClearedBoard(t *testing.T) {
	b := core.NewBoard(3, 3)
	core.ShuffleBoard(b, rand.New(rand.NewSource(1)))
	if !b.IsFullyCleared() {
		t.Error("shuffling an empty board should keep it empty")
	}
}
