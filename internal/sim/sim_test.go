package sim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunLevelOneAlwaysSolved(t *testing.T) {
	report, err := Run(context.Background(), Options{From: 1, To: 2, Runs: 4, Budget: 2000, Seed: 1, Workers: 2})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Levels) != 2 {
		t.Fatalf("expected 2 level reports, got %d", len(report.Levels))
	}

	l1 := report.Levels[0]
	if l1.Level != 1 || l1.Runs != 4 {
		t.Errorf("unexpected level 1 report: %+v", l1)
	}
	if l1.WinRate != 1 || l1.MeanMoves != 9 {
		t.Errorf("level 1 should always be solved in 9 moves, got win rate %v moves %v", l1.WinRate, l1.MeanMoves)
	}
	if report.Levels[1].Dims.String() != "3x3x2" {
		t.Errorf("unexpected level 2 dims %v", report.Levels[1].Dims)
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{From: 2, To: 2, Runs: 3, Budget: 500, Seed: 42, Workers: 3}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a.Levels[0].Solved != b.Levels[0].Solved || a.Levels[0].MeanNodes != b.Levels[0].MeanNodes {
		t.Errorf("same seed produced different reports: %+v vs %+v", a.Levels[0], b.Levels[0])
	}
}

func TestRunQuietWritesNothing(t *testing.T) {
	var out bytes.Buffer
	if _, err := Run(context.Background(), Options{From: 1, To: 1, Runs: 2, Seed: 5, Output: &out}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("progress bar wrote %q with ShowProgress off", out.String())
	}
}

func TestRunRejectsBadRange(t *testing.T) {
	if _, err := Run(context.Background(), Options{From: 5, To: 2}); err == nil {
		t.Error("expected an error for an inverted range")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{From: 1, To: 3, Runs: 50, Budget: 100})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestReportTable(t *testing.T) {
	report, err := Run(context.Background(), Options{From: 1, To: 1, Runs: 1, Seed: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	table := report.Table()
	for _, want := range []string{"Level", "3x3x1", "100.0", "used:"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestFormatTableAlignsWideText(t *testing.T) {
	out := FormatTable([]string{"Glyph", "N"}, [][]string{{"ab", "1,000"}, {"世界", "2"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")

	width := -1
	for _, l := range lines {
		w := 0
		for _, r := range l {
			if r == '世' || r == '界' {
				w += 2
			} else {
				w++
			}
		}
		if width == -1 {
			width = w
		} else if w != width {
			t.Errorf("line %q has width %d, expected %d", l, w, width)
		}
	}
}
