package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/registry"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recorded runs",
	Long: `Display the top 10 high scores for the specified game (default:
breakout), its statistics, and the most recent simulation runs.

Examples:
  bricks scores
  bricks scores breakout_endless
  bricks scores --runs 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent simulation runs to show (0 = none)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fatal("unknown game %q\nRun 'bricks list' to see available games.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bricks play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, statsErr := store.GetGameStats(gameID); statsErr == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	if flagRuns <= 0 {
		return
	}

	runs, err := store.RecentRuns(flagRuns)
	if err != nil {
		fatal("retrieving runs: %v", err)
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-16s  %-20s  %-7s  %-6s  %s\n", "Run", "Game", "Seed", "Steps", "Score", "Hash")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-16s  %-20d  %-7d  %-6d  %s\n",
			r.RunID.String()[:8], r.GameID, r.Seed, r.Steps, r.Score, r.StateHash)
	}
}
