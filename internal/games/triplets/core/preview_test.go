package core

import "testing"

func TestPreviewPush(t *testing.T) {
	A, B := Circle, Square
	W := Wildcard

	testCases := []struct {
		name      string
		pushes    []Symbol
		wantQueue []Symbol
		wantScore int
	}{
		{"three equal", []Symbol{A, A, A}, nil, 10},
		{"no match", []Symbol{A, A, B}, []Symbol{A, A, B}, 0},
		{"different middle", []Symbol{A, B, A}, []Symbol{A, B, A}, 0},
		{"trailing triple only", []Symbol{A, A, B, B, B}, []Symbol{A, A}, 10},
		{"wildcard middle", []Symbol{A, W, A}, nil, 10},
		{"wildcard first", []Symbol{W, A, A}, nil, 10},
		{"two wildcards", []Symbol{W, W, B}, nil, 10},
		{"all wildcards", []Symbol{W, W, W}, nil, 10},
		{"wildcard between different", []Symbol{A, W, B}, []Symbol{A, W, B}, 0},
		{"only tail checked", []Symbol{A, B, A, A}, []Symbol{A, B, A, A}, 0},
		{"match after prefix", []Symbol{B, A, A, A}, []Symbol{B}, 10},
		{"two eliminations", []Symbol{A, A, A, B, B, B}, nil, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPreview(0)
			for _, s := range tc.pushes {
				p.Push(s)
			}
			got := p.Items()
			if len(got) != len(tc.wantQueue) {
				t.Fatalf("expected queue %v, got %v", tc.wantQueue, got)
			}
			for i := range got {
				if got[i] != tc.wantQueue[i] {
					t.Fatalf("expected queue %v, got %v", tc.wantQueue, got)
				}
			}
			if p.Score() != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, p.Score())
			}
		})
	}
}

func TestPreviewShortQueueNeverMatches(t *testing.T) {
	p := NewPreview(DefaultReward)
	if elims := p.Push(Wildcard); len(elims) != 0 {
		t.Fatalf("single symbol eliminated: %v", elims)
	}
	if elims := p.Push(Wildcard); len(elims) != 0 {
		t.Fatalf("two symbols eliminated: %v", elims)
	}
	if p.Len() != 2 {
		t.Errorf("expected 2 queued, got %d", p.Len())
	}
}

func TestPreviewAnchor(t *testing.T) {
	p := NewPreview(DefaultReward)
	p.Push(Wildcard)
	p.Push(Triangle)
	elims := p.Push(Wildcard)
	if len(elims) != 1 {
		t.Fatalf("expected one elimination, got %d", len(elims))
	}
	if elims[0].Anchor != Triangle {
		t.Errorf("expected anchor triangle, got %v", elims[0].Anchor)
	}

	p.Push(Wildcard)
	p.Push(Wildcard)
	elims = p.Push(Wildcard)
	if len(elims) != 1 || elims[0].Anchor != Wildcard {
		t.Errorf("expected an all-wildcard elimination, got %v", elims)
	}
}

func TestPreviewCascade(t *testing.T) {
	p := NewPreview(DefaultReward)
	p.restore([]Symbol{Circle, Circle, Circle, Square, Square}, 0)

	elims := p.Push(Square)
	if len(elims) != 2 {
		t.Fatalf("expected cascade of 2 eliminations, got %d", len(elims))
	}
	if elims[0].Anchor != Square || elims[1].Anchor != Circle {
		t.Errorf("unexpected cascade order: %v, %v", elims[0].Anchor, elims[1].Anchor)
	}
	if !p.IsEmpty() {
		t.Errorf("expected empty queue, got %v", p.Items())
	}
	if p.Score() != 2*DefaultReward {
		t.Errorf("expected score %d, got %d", 2*DefaultReward, p.Score())
	}
}

func TestPreviewSixInARow(t *testing.T) {
	p := NewPreview(DefaultReward)
	total := 0
	for i := 0; i < 6; i++ {
		elims := p.Push(Circle)
		total += len(elims)
		if want := (i + 1) % 3; p.Len() != want {
			t.Errorf("after push %d: expected %d queued, got %d", i+1, want, p.Len())
		}
	}
	if total != 2 {
		t.Errorf("expected 2 eliminations, got %d", total)
	}
	if !p.IsEmpty() {
		t.Errorf("expected empty queue, got %v", p.Items())
	}
	if p.Score() != 2*DefaultReward {
		t.Errorf("expected score %d, got %d", 2*DefaultReward, p.Score())
	}
}

func TestPreviewCustomReward(t *testing.T) {
	p := NewPreview(25)
	p.Push(Hexagon)
	p.Push(Hexagon)
	p.Push(Hexagon)
	if p.Score() != 25 {
		t.Errorf("expected score 25, got %d", p.Score())
	}
}
