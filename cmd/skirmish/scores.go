package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/skirmish/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, ranked by kills and then by how
quickly they were scored.

Examples:
  skirmish scores
  skirmish scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skirmish play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-9s  %s\n", "Rank", "Kills", "Waves", "Shots", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "-----", "-----", "----", "----")
	for i, run := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-9s  %s\n", i+1, run.Kills, run.Waves, run.Shots,
			run.Duration.Round(100*time.Millisecond), run.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestKills(); err == nil {
		total, _ := store.CountRuns()
		fmt.Printf("Best: %d kills over %d runs\n", best, total)
	}
}
