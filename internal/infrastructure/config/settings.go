package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned alongside the defaults when a settings file
// is missing a key or holds the wrong type
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user-facing toggles
type Settings struct {
	Music        bool `yaml:"music"`
	SoundEffects bool `yaml:"sound_effects"`
}

// rawSettings keeps pointers so missing keys can be told apart from false
type rawSettings struct {
	Music        *bool `yaml:"music"`
	SoundEffects *bool `yaml:"sound_effects"`
}

// DefaultSettings returns every toggle enabled
func DefaultSettings() Settings {
	return Settings{Music: true, SoundEffects: true}
}

// ParseSettings decodes and validates a settings document
func ParseSettings(data []byte) (Settings, error) {
	var raw rawSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if raw.Music == nil || raw.SoundEffects == nil {
		return DefaultSettings(), fmt.Errorf("%w: music and sound_effects are required", ErrInvalidSettings)
	}
	return Settings{Music: *raw.Music, SoundEffects: *raw.SoundEffects}, nil
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults with no error; an invalid one yields the defaults and
// ErrInvalidSettings so the caller can report it.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// SaveSettings writes s to path, creating parent directories
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
