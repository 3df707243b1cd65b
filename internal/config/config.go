package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "rewind.yaml"

// Config holds the CLI settings. Flags override file values.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Render is one of auto, plain, color, markdown.
	Render string `yaml:"render"`
	// Capacity bounds the timeline length; 0 is unbounded.
	Capacity int `yaml:"capacity"`
	// Metrics dumps Prometheus metrics to stderr after a run.
	Metrics          bool   `yaml:"metrics"`
	MetricsNamespace string `yaml:"metrics_namespace"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel:         "info",
		Render:           "auto",
		MetricsNamespace: "rewind",
	}
}

// Load reads a YAML config file on top of Default.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Capacity < 0 {
		return cfg, fmt.Errorf("invalid capacity %d: must be >= 0", cfg.Capacity)
	}
	return cfg, nil
}
