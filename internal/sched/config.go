package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Algorithm string `yaml:"algorithm"`  // fcfs (by default)
	Quantum   int64  `yaml:"quantum"`    // 0 = run to completion (by default)
	TickMS    int    `yaml:"tick_ms"`    // 0 = no pacing (by default)
	LogLevel  string `yaml:"log_level"`  // info (by default)
	LogFormat string `yaml:"log_format"` // text (by default)
	Events    string `yaml:"events"`     // json, csv, text or none
	Summary   string `yaml:"summary"`    // json, table or none

	set map[string]bool // keys present in the loaded file
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Algorithm: FCFS.String(),
		LogLevel:  "info",
		LogFormat: "text",
		Events:    "json",
		Summary:   "json",
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file means
// defaults only.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(raw) > 0 {
		cfg.set = make(map[string]bool, len(raw))
		for k := range raw {
			cfg.set[k] = true
		}
	}

	cfg.clamp()
	return cfg, nil
}

// IsSet reports whether the loaded file named key explicitly, even when the
// value equals the default.
func (c Config) IsSet(key string) bool { return c.set[key] }

// sanity clamps
func (c *Config) clamp() {
	if c.Quantum < 0 {
		c.Quantum = 0
	}
	if c.TickMS < 0 {
		c.TickMS = 0
	}
	if c.Algorithm == "" {
		c.Algorithm = FCFS.String()
	}
}
