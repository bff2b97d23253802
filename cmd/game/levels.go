package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/infrastructure/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeLevels(cmd.OutOrStdout(), levelLoader(flagLevelsDir))
	},
}

// writeLevels prints each level's ID and display name
func writeLevels(w io.Writer, loader *config.Loader) error {
	names, err := loader.ListLevels()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No levels available.")
		return nil
	}

	fmt.Fprintln(w, "Available levels:")
	fmt.Fprintln(w)
	for _, name := range names {
		title := name
		if level, err := loader.LoadLevel(name); err == nil {
			title = levelTitle(level)
		}
		fmt.Fprintf(w, "  %-12s  %s\n", name, title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sightline play --level <id>' to play a level.")
	return nil
}
