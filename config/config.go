// Package config loads beamgrid run files.
//
// A run file is YAML:
//
//	input: testdata/contraption.txt   # ".zst" files are decompressed
//	mode: maximize                    # energize | maximize
//	entry: {x: 0, y: 0, dir: right}   # energize only
//	workers: 0                        # 0 = GOMAXPROCS
//	render: false                     # print the energized overlay
//	log_level: info
//
// Keys left out keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beamgrid/beam"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Run modes.
const (
	ModeEnergize = "energize"
	ModeMaximize = "maximize"
)

type Config struct {
	Input    string `yaml:"input"`
	Mode     string `yaml:"mode"`
	Entry    Entry  `yaml:"entry"`
	Workers  int    `yaml:"workers"`
	Render   bool   `yaml:"render"`
	LogLevel string `yaml:"log_level"`
}

type Entry struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"`
}

// Default is a single run from the top-left corner heading right.
func Default() Config {
	return Config{
		Mode:     ModeEnergize,
		Entry:    Entry{X: 0, Y: 0, Dir: "right"},
		LogLevel: "info",
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// Validate checks mode, entry direction, worker count and log level.
// The input path is not checked here; the driver may supply it later.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeEnergize, ModeMaximize:
	default:
		return fmt.Errorf("%w: mode %q, want %q or %q", ErrInvalidConfig, c.Mode, ModeEnergize, ModeMaximize)
	}
	if _, err := c.BeamEntry(); err != nil {
		return fmt.Errorf("%w: entry: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BeamEntry converts the configured entry to a beam state.
func (c *Config) BeamEntry() (beam.State, error) {
	d, err := beam.ParseDirection(c.Entry.Dir)
	if err != nil {
		return beam.State{}, err
	}
	return beam.State{X: c.Entry.X, Y: c.Entry.Y, Dir: d}, nil
}

// Level parses LogLevel for logrus.
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
