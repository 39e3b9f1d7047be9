// Package config loads optional YAML configuration for the command-line
// entrypoints. Flags override file values; the file overrides defaults.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"dataDir"`
	Solver   string `yaml:"solver"`   // engine|backtrack|parallel
	Strategy string `yaml:"strategy"` // twins|none
	LogLevel string `yaml:"logLevel"` // debug|info|warn|error
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./data",
		Solver:   "engine",
		Strategy: "twins",
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults; a
// missing file is an error (the caller asked for it explicitly).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
