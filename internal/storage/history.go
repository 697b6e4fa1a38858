package storage

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// historyRecord is the on-disk layout of the history file.
type historyRecord struct {
	BestLevel int `json:"best_level"`
}

// HistoryFile keeps the best level in a small JSON document,
// {"best_level": N}. It needs no database and is used as the fallback
// store and as a mirror of the database progress.
type HistoryFile struct {
	path string
}

// NewHistoryFile returns a history file at path (~ is expanded).
// The file is created on the first save.
func NewHistoryFile(path string) (*HistoryFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return &HistoryFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (h *HistoryFile) Path() string { return h.path }

// BestLevel returns the stored best level. A missing, unreadable or
// malformed file reads as 0.
func (h *HistoryFile) BestLevel() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	var rec historyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	if rec.BestLevel < 0 {
		return 0
	}
	return rec.BestLevel
}

// SaveBestLevel overwrites the file with level. The write goes through a
// temporary file and a rename so a crash never leaves a torn document.
func (h *HistoryFile) SaveBestLevel(level int) error {
	data, err := json.Marshal(historyRecord{BestLevel: level})
	if err != nil {
		return fmt.Errorf("storage: cannot encode history: %w", err)
	}

	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write history: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace history: %w", err)
	}
	return nil
}
