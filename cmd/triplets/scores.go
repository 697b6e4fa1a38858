package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/sim"
	"github.com/vovakirdan/tui-triplets/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best level, high scores and recent levels",
	Long: `Display the best level reached, the top scores and the most recent
level attempts.

Examples:
  triplets scores
  triplets scores --limit 20
  triplets scores --db ./triplets.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows per table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	p := message.NewPrinter(language.English)

	best, err := store.BestLevel(triplets.GameID)
	if err != nil {
		return err
	}
	if flagHistoryFile != "" {
		if h, herr := storage.NewHistoryFile(flagHistoryFile); herr == nil {
			best = max(best, h.BestLevel())
		}
	}
	p.Printf("Best level: %d\n\n", best)

	scores, err := store.TopScores(triplets.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	fmt.Println("High Scores")
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'triplets play' to set the first high score!")
	} else {
		rows := make([][]string, len(scores))
		for i, s := range scores {
			rows[i] = []string{
				p.Sprintf("%d", i+1),
				p.Sprintf("%d", s.Score),
				p.Sprintf("%d", s.Level),
				s.CreatedAt.Format("2006-01-02 15:04"),
			}
		}
		fmt.Print(sim.FormatTable([]string{"Rank", "Score", "Level", "Date"}, rows))
	}

	recent, err := store.RecentLevelResults(triplets.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving level results: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Recent Levels")
	rows := make([][]string, len(recent))
	for i, r := range recent {
		rows[i] = []string{
			p.Sprintf("%d", r.Level),
			string(r.Outcome),
			p.Sprintf("%d", r.Score),
			p.Sprintf("%d", r.Moves),
			p.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	fmt.Print(sim.FormatTable([]string{"Level", "Outcome", "Score", "Moves", "Time", "Date"}, rows))
	return nil
}
