package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/sightline/internal/application/game"
	"github.com/younwookim/sightline/internal/application/scene/playing"
	"github.com/younwookim/sightline/internal/infrastructure/config"
	"github.com/younwookim/sightline/internal/infrastructure/storage"
	"github.com/younwookim/sightline/internal/infrastructure/watch"
)

var (
	flagLevel  string
	flagRecord string
	flagWatch  bool
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open a window and play a level.

Controls:
  A/D         - Move
  W           - Jump
  Left Shift  - Sprint
  Left click  - Fire toward the cursor
  Esc         - Pause
  R/Space     - Restart (after the level ends)
  F5          - Save recording now
  Q           - Quit

Examples:
  sightline play
  sightline play --level level1
  sightline play --record run.json
  sightline play --levels ./assets --level custom --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "tutorial", "Level to play")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes (needs --levels)")
	playCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagDebug)

	tuning, err := config.LoadTuning(flagTuning)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	loader := levelLoader(flagLevelsDir)
	level, err := loader.LoadLevel(flagLevel)
	if err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if p := settingsPath(); p != "" {
		settings, err = config.LoadSettings(p)
		if errors.Is(err, config.ErrInvalidSettings) {
			logger.Warn("using default settings", "err", err)
		} else if err != nil {
			return err
		}
	}

	opts := playing.Options{
		Tuning:     tuning,
		Level:      level,
		Loader:     loader,
		Settings:   settings,
		Seed:       flagSeed,
		RecordPath: flagRecord,
		Logger:     logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
	} else {
		defer func() { _ = store.Close() }()
		opts.Store = store
	}

	if flagWatch {
		if flagLevelsDir == "" {
			return errors.New("--watch needs --levels")
		}
		w, err := watch.New(filepath.Dir(loader.LevelPath(flagLevel)))
		if err != nil {
			return fmt.Errorf("failed to watch levels: %w", err)
		}
		defer func() { _ = w.Close() }()
		opts.Watcher = w
		logger.Info("watching levels", "dir", flagLevelsDir)
	}

	scene, err := playing.New(opts)
	if err != nil {
		return err
	}

	d := tuning.Display
	g := game.New(scene, d.ScreenWidth, d.ScreenHeight, d.TPS)

	scale := max(flagScale, 1)
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Sightline - %s", levelTitle(level)))
	ebiten.SetTPS(d.TPS)

	return ebiten.RunGame(g)
}

// levelTitle picks the display name of a level
func levelTitle(level *config.LevelConfig) string {
	if level.Name != "" {
		return level.Name
	}
	return level.ID
}
