package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/infrastructure/config"
)

var (
	flagMusic bool
	flagSFX   bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user settings",
	Long: `Print the settings stored in ~/.sightline/settings.yaml, or change them.

Examples:
  sightline settings
  sightline settings --sound-effects=false`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagMusic, "music", true, "Enable music")
	settingsCmd.Flags().BoolVar(&flagSFX, "sound-effects", true, "Enable sound effects")
}

func runSettings(cmd *cobra.Command, args []string) error {
	path := settingsPath()
	if path == "" {
		return errors.New("no home directory for settings")
	}

	s, err := config.LoadSettings(path)
	if err != nil && !errors.Is(err, config.ErrInvalidSettings) {
		return err
	}

	changed := false
	if cmd.Flags().Changed("music") {
		s.Music, changed = flagMusic, true
	}
	if cmd.Flags().Changed("sound-effects") {
		s.SoundEffects, changed = flagSFX, true
	}
	if changed {
		if err := config.SaveSettings(path, s); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "music: %t\nsound_effects: %t\n", s.Music, s.SoundEffects)
	return nil
}
