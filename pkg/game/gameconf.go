package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConf holds game-level configuration parameters, loaded from a YAML
// file. Every field has a sensible default so the engine runs with no
// config at all.
type GameConf struct {
	// --- Identity ---
	GameName string `yaml:"game_name"`
	Prompt   string `yaml:"prompt"`

	// --- Content ---
	WorldFile string `yaml:"world_file"` // empty = built-in demo world

	// --- Transcript ---
	TranscriptFile string `yaml:"transcript_file"` // empty = recording disabled

	// --- Logging ---
	LogLevel string `yaml:"log_level"` // logrus level name, default "info"
}

// DefaultGameConf returns a GameConf with the engine defaults.
func DefaultGameConf() *GameConf {
	return &GameConf{
		GameName: "gofiction",
		Prompt:   "> ",
		LogLevel: "info",
	}
}

// LoadGameConf reads a YAML config file over the defaults. A missing
// field keeps its default; an unreadable or malformed file is an error.
func LoadGameConf(path string) (*GameConf, error) {
	conf := DefaultGameConf()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gameconf: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("gameconf: parse %s: %w", path, err)
	}
	return conf, nil
}
