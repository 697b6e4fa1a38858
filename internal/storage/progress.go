package storage

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ProgressStore persists the best level reached.
// BestLevel never fails; unreadable state reads as 0.
type ProgressStore interface {
	BestLevel() int
	SaveBestLevel(level int) error
}

// Progress exposes one game's progress row as a ProgressStore.
type Progress struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Progress returns a ProgressStore bound to gameID. Query errors are
// logged to logger (if non-nil) and read as 0.
func (s *Store) Progress(gameID string, logger *log.Logger) *Progress {
	return &Progress{store: s, gameID: gameID, logger: logger}
}

// BestLevel implements ProgressStore.
func (p *Progress) BestLevel() int {
	best, err := p.store.BestLevel(p.gameID)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("reading best level", "game", p.gameID, "error", err)
		}
		return 0
	}
	return best
}

// SaveBestLevel implements ProgressStore.
func (p *Progress) SaveBestLevel(level int) error {
	return p.store.SaveBestLevel(p.gameID, level)
}

// Mirror fans progress out to several stores. BestLevel is the highest
// value any store reports, so a history file left by an older install is
// picked up by the database on the next save.
type Mirror []ProgressStore

// BestLevel implements ProgressStore.
func (m Mirror) BestLevel() int {
	best := 0
	for _, s := range m {
		if s == nil {
			continue
		}
		best = max(best, s.BestLevel())
	}
	return best
}

// SaveBestLevel writes to every store and joins their errors.
func (m Mirror) SaveBestLevel(level int) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.SaveBestLevel(level); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
