package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBestLevel("triplets", 4); err != nil {
		t.Fatalf("SaveBestLevel() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestLevel("triplets")
	if err != nil || best != 4 {
		t.Errorf("BestLevel() = (%d, %v), expected 4", best, err)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ level, score int }{{1, 30}, {3, 120}, {2, 60}} {
		if _, err := store.SaveScore("triplets", s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 9, 999)

	scores, err := store.TopScores("triplets", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Level != 3 || scores[1].Score != 60 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	high, err := store.HighScore("triplets")
	if err != nil || high != 120 {
		t.Errorf("HighScore() = (%d, %v), expected 120", high, err)
	}

	high, err = store.HighScore("missing")
	if err != nil || high != 0 {
		t.Errorf("HighScore() for empty game = (%d, %v), expected 0", high, err)
	}

	stats, err := store.GetGameStats("triplets")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.TotalScore != 210 || stats.AvgScore != 70 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	results := []LevelResult{
		{GameID: "triplets", Level: 1, Outcome: OutcomeWon, Score: 30, Moves: 9, Duration: 12 * time.Second},
		{GameID: "triplets", Level: 2, Outcome: OutcomeTimeout, Score: 20, Moves: 14, Duration: 100 * time.Second},
		{GameID: "triplets", Level: 2, Outcome: OutcomeWon, Score: 60, Moves: 18, Duration: 45 * time.Second},
		{GameID: "triplets", Level: 2, Outcome: OutcomeWon, Score: 60, Moves: 18, Duration: 30 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	recent, err := store.RecentLevelResults("triplets", 3)
	if err != nil {
		t.Fatalf("RecentLevelResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 results, got %d", len(recent))
	}
	if recent[0].Duration != 30*time.Second || recent[2].Outcome != OutcomeTimeout {
		t.Errorf("results not newest first: %+v", recent)
	}

	stats, err := store.AllLevelStats("triplets")
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 levels, got %d", len(stats))
	}
	lvl2 := stats[1]
	if lvl2.Level != 2 || lvl2.Attempts != 3 || lvl2.Wins != 2 || lvl2.BestScore != 60 {
		t.Errorf("unexpected level 2 stats: %+v", lvl2)
	}
	if lvl2.FastestWin != 30*time.Second {
		t.Errorf("expected fastest win 30s, got %v", lvl2.FastestWin)
	}

	if err := store.ClearScores("triplets"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	recent, _ = store.RecentLevelResults("triplets", 10)
	if len(recent) != 0 {
		t.Errorf("expected no results after clear, got %d", len(recent))
	}
}

func TestStoreBestLevelNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestLevel("triplets")
	if err != nil || best != 0 {
		t.Fatalf("BestLevel() on empty store = (%d, %v)", best, err)
	}

	for _, lvl := range []int{3, 5, 2} {
		if err := store.SaveBestLevel("triplets", lvl); err != nil {
			t.Fatalf("SaveBestLevel(%d) failed: %v", lvl, err)
		}
	}

	p := store.Progress("triplets", nil)
	if got := p.BestLevel(); got != 5 {
		t.Errorf("expected best level 5, got %d", got)
	}
}
