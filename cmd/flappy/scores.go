package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run journal",
	Long: `Display recorded runs from the journal given by --db.

The journal is history only; the in-game high score always starts at 0.

Examples:
  flappy scores --db ~/.flappy/runs.db
  flappy scores --db ~/.flappy/runs.db --recent
  flappy scores --db ~/.flappy/runs.db --player alice --limit 5`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's runs")
}

func runScores() error {
	if flagDBPath == "" {
		return errors.New("no journal: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var runs []storage.Run
	title := "Best Runs"
	switch {
	case flagScoresPlayer != "":
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
		title = "Best Runs - " + flagScoresPlayer
	case flagScoresRecent:
		runs, err = store.RecentRuns(flagScoresLimit)
		title = "Recent Runs"
	default:
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play --db %s' to record the first one!\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "Rank", "Score", "Level", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Duration.Round(100*time.Millisecond), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Best level: %d  Play time: %s\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.BestLevel, stats.PlayTime.Round(time.Second))
	return nil
}
