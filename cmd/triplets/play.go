package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-triplets/internal/config"
	"github.com/vovakirdan/tui-triplets/internal/core"
	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/platform/tui"
	"github.com/vovakirdan/tui-triplets/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Triplets",
	Long: `Start playing at level 1, or at the level given with --level.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Take the top symbol under the cursor
  Mouse click  - Take the clicked symbol, press Undo or Shuffle
  U            - Undo (from level 2)
  X            - Shuffle (from level 3)
  P            - Pause
  R            - Restart the level when no moves are left
  B/Esc        - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer level clock
  normal - Clock as configured
  hard   - Shorter level clock
  fixed  - No clock at all

Examples:
  triplets play
  triplets play --level 5
  triplets play --difficulty fixed
  triplets play --config ./my-triplets.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")

	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame applies the command line to the settings New picks up.
func configureGame(e *env, level int) error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	triplets.SetConfigPath(flagConfig)
	triplets.SetDifficultyPreset(flagDifficulty)
	triplets.SetStartLevel(level)
	triplets.SetProgressStore(e.progress)
	triplets.SetResultRecorder(tui.StoreRecorder(e.store, e.logger))
	triplets.SetLogger(e.logger)
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}

	e := openEnv()
	defer e.close()

	if err := configureGame(e, flagLevel); err != nil {
		return err
	}

	game, err := registry.Create(triplets.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if _, err := tui.Run(game, e.store, terminalConfig(), e.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
