// Package config loads tool configuration from an optional YAML file.
// Defaults reproduce the reference run: generate for ACEILNOPRS, explore
// 10-letter combinations of the alphabet minus D and T.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level tool configuration. CLI flags override any field.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Explore  ExploreConfig  `yaml:"explore"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GenerateConfig controls the single-combination code-generation mode.
type GenerateConfig struct {
	Letters string `yaml:"letters"`
	Output  string `yaml:"output"`
}

// ExploreConfig controls the exhaustive combination search.
type ExploreConfig struct {
	Size    int    `yaml:"size"`
	Exclude string `yaml:"exclude"`
	Output  string `yaml:"output"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the reference behavior.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Letters: "ACEILNOPRS",
		},
		Explore: ExploreConfig{
			Size: 10,
			// D and T don't display well on the watch.
			Exclude: "DT",
			Output:  "output.txt",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
