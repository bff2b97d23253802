// sightline is a 2D platformer where enemies shoot on sight.
//
// Usage:
//
//	sightline play [--level name]   - Play a level
//	sightline replay <file>         - Re-simulate a recording headlessly
//	sightline levels                - List available levels
//	sightline scores [level]        - Show high scores
//	sightline settings              - Show or change user settings
//
// Global flags:
//
//	--seed <value>    - RNG seed (0 = random based on time)
//	--db <path>       - Scores database (default: ~/.sightline/scores.db)
//	--tuning <path>   - Tuning YAML overriding the built-in values
//	--levels <dir>    - Directory holding levels/*.json instead of the built-in levels
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/infrastructure/config"
	"github.com/younwookim/sightline/internal/infrastructure/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagTuning    string
	flagLevelsDir string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sightline",
	Short: "Sightline - a platformer where enemies shoot on sight",
	Long: `Sightline is a 2D platformer. Reach the golden finish tiles while
patrolling enemies watch for you and shoot once they have seen you long enough.

Examples:
  sightline play
  sightline play --level level1 --record run.json
  sightline replay run.json
  sightline scores tutorial`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory containing levels/*.json (default: built-in levels)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// newLogger builds the process logger
func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sightline",
		Level:           level,
	})
}

// levelLoader returns the on-disk loader when a levels directory is given
func levelLoader(dir string) *config.Loader {
	if dir == "" {
		return config.EmbeddedLoader()
	}
	return config.NewLoader(dir)
}

// settingsPath is where user settings live, or "" without a home directory
func settingsPath() string {
	return config.UserPath("settings.yaml")
}
