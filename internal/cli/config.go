package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete CLI configuration structure, loaded from a YAML
// file. Each subsystem gets its own nested section, mirroring how the
// rest of this codebase's config types are laid out.
type Config struct {
	Pool struct {
		HotWorkers  int           `yaml:"hot_workers"`
		IdleTimeout time.Duration `yaml:"idle_timeout"`
	} `yaml:"pool"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`

	CLI struct {
		Prompt string `yaml:"prompt"`
	} `yaml:"cli"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	var cfg Config
	cfg.Pool.HotWorkers = 4
	cfg.Pool.IdleTimeout = 30 * time.Second
	cfg.Metrics.Enabled = false
	cfg.Metrics.Port = 9090
	cfg.CLI.Prompt = "taskpool> "
	return cfg
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}
