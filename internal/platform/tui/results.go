package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/storage"
)

// StoreRecorder saves finished level attempts into store. Failures are
// logged and play continues.
func StoreRecorder(store *storage.Store, logger *log.Logger) triplets.ResultRecorder {
	return triplets.ResultRecorderFunc(func(r triplets.LevelResult) {
		if store == nil {
			return
		}
		_, err := store.SaveLevelResult(storage.LevelResult{
			GameID:   triplets.GameID,
			Level:    r.Level,
			Outcome:  storage.Outcome(r.Outcome),
			Score:    r.Score,
			Moves:    r.Moves,
			Duration: r.Duration,
		})
		if err != nil && logger != nil {
			logger.Warn("could not save level result", "level", r.Level, "error", err)
		}
	})
}
