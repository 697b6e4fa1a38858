package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

func TestBoardEmptyStack(t *testing.T) {
	b := core.NewBoard(2, 2)
	p := core.P(1, 1)

	if got := b.TopAt(p); got != core.None {
		t.Errorf("expected None on empty stack, got %v", got)
	}
	if got := b.PopTop(p); got != core.None {
		t.Errorf("expected PopTop on empty stack to return None, got %v", got)
	}
	if !b.IsFullyCleared() {
		t.Error("new board should be cleared")
	}
}

func TestBoardInBounds(t *testing.T) {
	b := core.NewBoard(3, 2)

	testCases := []struct {
		pos      core.Position
		expected bool
	}{
		{core.P(0, 0), true},
		{core.P(2, 1), true},
		{core.P(3, 0), false},
		{core.P(0, 2), false},
		{core.P(-1, 0), false},
	}

	for _, tc := range testCases {
		if got := b.InBounds(tc.pos); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.pos, tc.expected, got)
		}
	}
	if got := b.TopAt(core.P(5, 5)); got != core.None {
		t.Errorf("expected None off the board, got %v", got)
	}
}

func TestBoardPopUntilCleared(t *testing.T) {
	lvl, err := core.Generate(2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b := lvl.Board
	total := b.Remaining()

	popped := 0
	for _, p := range b.Positions() {
		for b.TopAt(p) != core.None {
			before := b.StackHeight(p)
			b.PopTop(p)
			if b.StackHeight(p) != before-1 {
				t.Fatalf("pop at %v did not shrink the stack", p)
			}
			popped++
		}
	}
	if popped != total {
		t.Errorf("expected %d pops, got %d", total, popped)
	}
	if !b.IsFullyCleared() {
		t.Error("board should be cleared")
	}
}

func TestBoardCloneIndependent(t *testing.T) {
	lvl, err := core.Generate(3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	orig := lvl.Board
	clone := orig.Clone()
	if !orig.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone.PopTop(core.P(0, 0))
	if orig.Equal(clone) {
		t.Error("mutating the clone changed the original")
	}
	if orig.StackHeight(core.P(0, 0)) != 3 {
		t.Errorf("original stack height changed: %d", orig.StackHeight(core.P(0, 0)))
	}
}

func TestBoardPositionsColumnMajor(t *testing.T) {
	b := core.NewBoard(2, 3)
	want := []core.Position{
		core.P(0, 0), core.P(0, 1), core.P(0, 2),
		core.P(1, 0), core.P(1, 1), core.P(1, 2),
	}
	got := b.Positions()
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
