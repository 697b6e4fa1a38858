package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-triplets/internal/config"
	tcore "github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
	"github.com/vovakirdan/tui-triplets/internal/sim"
)

var (
	flagLevelsFrom int
	flagLevelsTo   int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show how boards grow from level to level",
	Long: `Print, for each level, the board size, the number of blocks, the
symbols in play, the symbol introduced at that level and whether Undo
and Shuffle are available.

Examples:
  triplets levels
  triplets levels --from 5 --to 20`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsFrom, "from", 1, "First level")
	levelsCmd.Flags().IntVar(&flagLevelsTo, "to", 12, "Last level")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if flagLevelsFrom < 1 || flagLevelsTo < flagLevelsFrom {
		return fmt.Errorf("invalid level range %d..%d", flagLevelsFrom, flagLevelsTo)
	}

	cfg, err := config.LoadTriplets(flagConfig)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	header := []string{"Level", "Board", "Blocks", "Distinct", "Pool", "New", "Undo", "Shuffle"}
	var rows [][]string
	for lvl := flagLevelsFrom; lvl <= flagLevelsTo; lvl++ {
		plan, err := tcore.BuildMultiset(lvl)
		if err != nil {
			return err
		}
		fresh := "-"
		if s, ok := tcore.UnlockedAt(lvl); ok {
			fresh = s.String()
		}
		rows = append(rows, []string{
			p.Sprintf("%d", lvl),
			plan.Dims.String(),
			p.Sprintf("%d", plan.Dims.Volume()),
			p.Sprintf("%d", distinct(plan.Chosen)),
			p.Sprintf("%d", len(plan.Pool)),
			fresh,
			yesNo(lvl >= cfg.Rules.UndoUnlockLevel),
			yesNo(lvl >= cfg.Rules.ShuffleUnlockLevel),
		})
	}

	fmt.Print(sim.FormatTable(header, rows))
	return nil
}

func distinct(syms []tcore.Symbol) int {
	seen := make(map[tcore.Symbol]bool, len(syms))
	for _, s := range syms {
		seen[s] = true
	}
	return len(seen)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
