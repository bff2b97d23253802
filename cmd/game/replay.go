package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/application/replay"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

var flagReplayLevel string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recording without a window",
	Long: `Run a recorded session through the simulation headlessly and print
how it ended. The recording's seed and tick rate are used, so the outcome
matches the original session.

Examples:
  sightline replay run.json
  sightline replay run.json --level level1`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayLevel, "level", "", "Level to use instead of the one in the recording")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagDebug)

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	tuning, err := config.LoadTuning(flagTuning)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	name := data.Level
	if flagReplayLevel != "" {
		name = flagReplayLevel
	}
	level, err := levelLoader(flagLevelsDir).LoadLevel(name)
	if err != nil {
		return err
	}

	sum, err := replay.Run(*data, tuning, level, logger)
	if err != nil {
		return err
	}

	writeSummary(cmd.OutOrStdout(), name, *data, sum)
	return nil
}

// writeSummary prints a replay outcome
func writeSummary(w io.Writer, level string, data replay.ReplayData, sum replay.Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "Replay of %s (seed %d, recorded %s)\n", level, data.Seed, data.StartTime)
	fmt.Fprintf(&b, "  Frames:  %d/%d\n", sum.Frames, sum.Total)
	fmt.Fprintf(&b, "  Result:  %s\n", sum.Final.Status)
	fmt.Fprintf(&b, "  Score:   %d\n", sum.Final.Score)
	fmt.Fprintf(&b, "  Lives:   %d\n", sum.Final.Lives)
	fmt.Fprintf(&b, "  Shots:   %d\n", sum.Shots)
	fmt.Fprintf(&b, "  Kills:   %d\n", sum.Kills)
	_, _ = io.WriteString(w, b.String())
}
