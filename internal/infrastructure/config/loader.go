package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml levels/*.json
var assets embed.FS

// Loader reads level files from a filesystem rooted at basePath
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a loader over a directory on disk
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a loader over an arbitrary filesystem
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// EmbeddedLoader serves the levels compiled into the binary
func EmbeddedLoader() *Loader {
	return NewFSLoader(assets, "")
}

// LevelPath returns the on-disk path of a level, or "" for embedded levels
func (l *Loader) LevelPath(name string) string {
	if l.basePath == "" {
		return ""
	}
	return filepath.Join(l.basePath, "levels", name+".json")
}

func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// ListLevels returns the level names available to the loader, sorted
func (l *Loader) ListLevels() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "levels/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// DefaultTuning decodes the embedded tuning.yaml
func DefaultTuning() (*TuningConfig, error) {
	var cfg TuningConfig
	data, err := assets.ReadFile("defaults/tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded tuning: %w", err)
	}
	return &cfg, nil
}

// LoadTuning loads tuning overrides on top of the embedded defaults.
// Search order: customPath -> ~/.sightline/tuning.yaml -> ./configs/tuning.yaml.
// Keys missing from the override keep their default values.
func LoadTuning(customPath string) (*TuningConfig, error) {
	cfg, err := DefaultTuning()
	if err != nil {
		return nil, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg)
	}

	for _, p := range []string{UserPath("tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", p, err)
		}
		break
	}
	return validated(cfg)
}

func validated(cfg *TuningConfig) (*TuningConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UserPath returns a path under ~/.sightline, or empty if home is unavailable
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sightline", filename)
}
