package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/platform/tui"
	"github.com/vovakirdan/tui-triplets/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Triplets with the start screen",
	Long: `Start Triplets in interactive menu mode.

The start screen offers any level up to one past your best, the best
level reached and the scoreboard. Leaving a game returns to the menu.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Change start level
  Enter/Space  - Select
  Q            - Quit

Examples:
  triplets menu
  triplets menu --difficulty hard
  triplets menu --db ./triplets.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e := openEnv()
	defer e.close()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(e.progress, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := configureGame(e, menuResult.StartLevel); err != nil {
			return err
		}
		game, err := registry.Create(triplets.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, e.store, cfg, e.logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
