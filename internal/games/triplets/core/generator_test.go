package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

func countOf(syms []core.Symbol) map[core.Symbol]int {
	counts := make(map[core.Symbol]int)
	for _, s := range syms {
		counts[s]++
	}
	return counts
}

func TestBuildMultisetInvariants(t *testing.T) {
	for level := 1; level <= 12; level++ {
		plan, err := core.BuildMultiset(level)
		if err != nil {
			t.Fatalf("level %d: BuildMultiset failed: %v", level, err)
		}
		if len(plan.Flat) != plan.Dims.Volume() {
			t.Errorf("level %d: expected %d symbols, got %d", level, plan.Dims.Volume(), len(plan.Flat))
		}
		if err := core.CheckMultiset(plan.Flat, plan.Dims); err != nil {
			t.Errorf("level %d: multiset check failed: %v", level, err)
		}
		if plan.Triplets*3+plan.Remainder != plan.Dims.Volume() {
			t.Errorf("level %d: triplets %d + remainder %d do not add up", level, plan.Triplets, plan.Remainder)
		}
		wantDistinct := max(1, min(plan.Triplets, plan.Dims.Columns()))
		if len(plan.Chosen) != wantDistinct {
			t.Errorf("level %d: expected %d chosen, got %d", level, wantDistinct, len(plan.Chosen))
		}
	}
}

func TestBuildMultisetLevelOne(t *testing.T) {
	plan, err := core.BuildMultiset(1)
	if err != nil {
		t.Fatalf("BuildMultiset failed: %v", err)
	}
	counts := countOf(plan.Flat)
	want := map[core.Symbol]int{core.Circle: 3, core.Triangle: 3, core.Square: 3}
	if len(counts) != len(want) {
		t.Fatalf("expected %d symbols, got %v", len(want), counts)
	}
	for s, n := range want {
		if counts[s] != n {
			t.Errorf("%v: expected %d, got %d", s, n, counts[s])
		}
	}
}

func TestExtraSymbolsGetOneTriplet(t *testing.T) {
	testCases := []struct {
		level  int
		extras []core.Symbol
	}{
		{5, []core.Symbol{core.FourStar}},
		{6, []core.Symbol{core.FourStar, core.FiveStar}},
	}

	for _, tc := range testCases {
		plan, err := core.BuildMultiset(tc.level)
		if err != nil {
			t.Fatalf("level %d: BuildMultiset failed: %v", tc.level, err)
		}
		counts := countOf(plan.Flat)
		for _, s := range tc.extras {
			if counts[s] != 3 {
				t.Errorf("level %d: expected exactly one triplet of %v, got %d", tc.level, s, counts[s])
			}
		}
	}
}

func TestBuildMultisetRejectsLevelZero(t *testing.T) {
	if _, err := core.BuildMultiset(0); !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := core.Generate(-1, rand.New(rand.NewSource(1))); !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel from Generate, got %v", err)
	}
}

func TestCheckMultisetErrors(t *testing.T) {
	dims := core.Dimensions{W: 3, H: 1, D: 1}
	testCases := []struct {
		name string
		flat []core.Symbol
		code string
	}{
		{"short", []core.Symbol{core.Circle, core.Circle}, "VOLUME"},
		{"none", []core.Symbol{core.Circle, core.None, core.Circle}, "INVALID_SYMBOL"},
		{"broken triplet", []core.Symbol{core.Circle, core.Circle, core.Square}, "TRIPLETS"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.CheckMultiset(tc.flat, dims)
			var inv *core.InvariantError
			if !errors.As(err, &inv) {
				t.Fatalf("expected InvariantError, got %v", err)
			}
			if inv.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, inv.Code)
			}
		})
	}

	ok := []core.Symbol{core.Square, core.Square, core.Square}
	if err := core.CheckMultiset(ok, dims); err != nil {
		t.Errorf("expected valid multiset, got %v", err)
	}
}

func TestGenerateConservesMultiset(t *testing.T) {
	for level := 1; level <= 8; level++ {
		plan, err := core.BuildMultiset(level)
		if err != nil {
			t.Fatalf("level %d: BuildMultiset failed: %v", level, err)
		}
		lvl, err := core.Generate(level, rand.New(rand.NewSource(int64(level))))
		if err != nil {
			t.Fatalf("level %d: Generate failed: %v", level, err)
		}

		want := countOf(plan.Flat)
		got := lvl.Board.Counts()
		for s, n := range want {
			if got[s] != n {
				t.Errorf("level %d: %v placed %d times, expected %d", level, s, got[s], n)
			}
		}
		if got[core.Wildcard] != want[core.Wildcard] {
			t.Errorf("level %d: unexpected wildcards on board: %d", level, got[core.Wildcard])
		}

		for _, h := range lvl.Board.Heights() {
			if h != lvl.Dims.D {
				t.Fatalf("level %d: expected every stack at depth %d, got %d", level, lvl.Dims.D, h)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := core.Generate(4, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := core.Generate(4, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !a.Board.Equal(b.Board) {
		t.Error("same seed should produce identical boards")
	}
}

func TestPlacePadsWithWildcard(t *testing.T) {
	dims := core.Dimensions{W: 1, H: 1, D: 3}
	b := core.Place([]core.Symbol{core.Circle, core.Square}, dims, rand.New(rand.NewSource(1)))

	p := core.P(0, 0)
	if h := b.StackHeight(p); h != 3 {
		t.Fatalf("expected height 3, got %d", h)
	}
	want := []core.Symbol{core.Square, core.Wildcard, core.Circle}
	for i, s := range want {
		if got := b.PopTop(p); got != s {
			t.Errorf("pop %d: expected %v, got %v", i, s, got)
		}
	}
}
