package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top scores, for one level or across all levels.

Examples:
  sightline scores
  sightline scores tutorial --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open scores database: %w", err)
	}
	defer func() { _ = store.Close() }()

	scores, err := store.TopScores(level, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeScores(out, level, scores)
	if level != "" && len(scores) > 0 {
		best, err := store.HighScore(level)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}

// writeScores prints a ranked score table
func writeScores(w io.Writer, level string, scores []storage.ScoreEntry) {
	title := "all levels"
	if level != "" {
		title = level
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Level", "Score", "Clear", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		cleared := "no"
		if e.Completed {
			cleared = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-5s  %s\n", i+1, e.Level, e.Score, cleared, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
