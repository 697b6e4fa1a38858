package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "game_history.json")
	h, err := NewHistoryFile(path)
	if err != nil {
		t.Fatalf("NewHistoryFile() failed: %v", err)
	}

	if got := h.BestLevel(); got != 0 {
		t.Errorf("missing file should read as 0, got %d", got)
	}
	if err := h.SaveBestLevel(7); err != nil {
		t.Fatalf("SaveBestLevel() failed: %v", err)
	}
	if got := h.BestLevel(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if string(data) != `{"best_level":7}` {
		t.Errorf("unexpected file contents %s", data)
	}
}

func TestHistoryFileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json"},
		{"wrong type", `{"best_level": "three"}`},
		{"negative", `{"best_level": -4}`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game_history.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			h, _ := NewHistoryFile(path)
			if got := h.BestLevel(); got != 0 {
				t.Errorf("expected 0, got %d", got)
			}
		})
	}
}

func TestHistoryFileOtherKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_history.json")
	os.WriteFile(path, []byte(`{"best_level": 3, "theme": "dark"}`), 0o644)

	h, _ := NewHistoryFile(path)
	if got := h.BestLevel(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

type failingStore struct{ best int }

func (f failingStore) BestLevel() int          { return f.best }
func (f failingStore) SaveBestLevel(int) error { return errors.New("read-only") }

func TestMirror(t *testing.T) {
	h, _ := NewHistoryFile(filepath.Join(t.TempDir(), "game_history.json"))
	m := Mirror{h, failingStore{best: 6}, nil}

	if got := m.BestLevel(); got != 6 {
		t.Errorf("expected the highest stored level 6, got %d", got)
	}

	err := m.SaveBestLevel(8)
	if err == nil {
		t.Error("expected the failing store's error to surface")
	}
	if got := h.BestLevel(); got != 8 {
		t.Errorf("healthy store should still be written, got %d", got)
	}
}
