// triplets is a terminal tile puzzle: take symbols off the board into the
// preview row and clear them three at a time before the clock runs out.
//
// Usage:
//
//	triplets play            - Play from level 1 (or --level N)
//	triplets menu            - Start screen, scoreboard and play
//	triplets levels          - Show how the boards grow
//	triplets scores          - Show best level, high scores and recent levels
//	triplets simulate        - Autoplay generated boards and report win rates
//	triplets serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible boards
//	--db <path>             - Set database path (default: ~/.triplets/triplets.db)
//	--history-file <path>   - Best-level file used alongside or instead of the database
//	--log-file <path>       - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/storage"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagHistoryFile string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "triplets",
	Short: "Triplets - a stacking tile puzzle for your terminal",
	Long: `Triplets is a terminal puzzle. Take the top symbol of any stack into
the preview row; three equal symbols at the end of the row vanish.
Clear every stack and the row before the clock runs out.

Available commands:
  play      - Play directly
  menu      - Start screen with level picker and scoreboard
  levels    - Show board sizes and unlocks per level
  scores    - View best level, high scores and recent levels
  simulate  - Measure how clearable generated levels are
  serve     - Start SSH server for remote play

Examples:
  triplets play
  triplets play --level 4 --difficulty easy
  triplets menu
  triplets simulate --to 10 --runs 100
  triplets serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.triplets/triplets.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagHistoryFile, "history-file", "~/.triplets/history.json", "Path to the best-level history file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the logger used while the TUI owns the terminal.
// The returned closer must be called on exit.
func newLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "triplets",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// env bundles the persistence a command runs against. Either part may be
// missing; play continues without it.
type env struct {
	store    *storage.Store
	progress storage.ProgressStore
	logger   *log.Logger
	close    func()
}

// openEnv opens the database and the history file. The history file is
// mirrored next to the database and takes over when the database is
// unavailable.
func openEnv() *env {
	logger, closeLog := newLogger()
	e := &env{logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	e.store = store

	var stores storage.Mirror
	if store != nil {
		stores = append(stores, store.Progress(triplets.GameID, logger.WithPrefix("storage")))
	}
	if flagHistoryFile != "" {
		history, herr := storage.NewHistoryFile(flagHistoryFile)
		if herr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not use history file: %v\n", herr)
		} else {
			stores = append(stores, history)
		}
	}
	switch len(stores) {
	case 0:
	case 1:
		e.progress = stores[0]
	default:
		e.progress = stores
	}

	e.close = func() {
		if e.store != nil {
			e.store.Close()
		}
		closeLog()
	}
	return e
}
