// Package config handles configuration loading and validation for autolist.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/autolist/buffer"
)

// Config holds the application configuration.
type Config struct {
	// TabStops is the default tab stop layout in points. Misplaced list
	// tab stops are reset to it.
	TabStops []float64 `yaml:"tab_stops"`
	// PointsPerCell converts tab stop points into terminal cells.
	PointsPerCell float64 `yaml:"points_per_cell"`
	ShowLineNums  bool    `yaml:"show_line_nums"`
	LogLevel      string  `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TabStops:      defaultTabStops(),
		PointsPerCell: 7,
		ShowLineNums:  false,
		LogLevel:      "info",
	}
}

func defaultTabStops() []float64 {
	out := make([]float64, 0, 12)
	for i := 1; i <= 12; i++ {
		out = append(out, float64(28*i))
	}
	return out
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.PointsPerCell == 0 {
		c.PointsPerCell = defaults.PointsPerCell
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.PointsPerCell <= 0 {
		return fmt.Errorf("points_per_cell must be positive, got %v", c.PointsPerCell)
	}

	for i, loc := range c.TabStops {
		if loc <= 0 {
			return fmt.Errorf("tab_stops[%d] must be positive, got %v", i, loc)
		}
		if i > 0 && loc <= c.TabStops[i-1] {
			return fmt.Errorf("tab_stops must be strictly increasing: tab_stops[%d]=%v follows %v", i, loc, c.TabStops[i-1])
		}
	}

	return nil
}

// DefaultTabStops returns TabStops as a buffer tab stop layout. An empty
// list yields an empty, non-nil layout, which disables correction.
func (c *Config) DefaultTabStops() []buffer.TabStop {
	out := make([]buffer.TabStop, 0, len(c.TabStops))
	for _, loc := range c.TabStops {
		out = append(out, buffer.TabStop{Location: loc})
	}
	return out
}
