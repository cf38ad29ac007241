// Package config provides configuration for the chessrules command.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// StartFEN is the position play starts from. Empty means the standard
	// initial position.
	StartFEN string `yaml:"start_fen,omitempty"`
}

// BatchConfig holds settings for concurrent FEN validation.
type BatchConfig struct {
	// Workers is the number of goroutines validating positions.
	Workers int `yaml:"workers"`

	// QueueSize is the capacity of the pool's work and result queues.
	QueueSize int `yaml:"queue_size"`
}

// Config holds all program configuration.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Output    OutputConfig    `yaml:"output"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Batch     BatchConfig     `yaml:"batch"`
	Duplicate DuplicateConfig `yaml:"duplicates"`
	Log       LogConfig       `yaml:"log"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     *NewOutputConfig(),
		Analysis:   *NewAnalysisConfig(),
		Batch:      BatchConfig{Workers: runtime.NumCPU(), QueueSize: 64},
		Duplicate:  *NewDuplicateConfig(),
		Log:        *NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Load reads a YAML configuration file. Settings missing from the file keep
// their default values.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes the configuration to filename as YAML.
func (c *Config) Save(filename string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return fmt.Errorf("'%s': %w", filename, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file '%s': %w", filename, err)
	}
	return nil
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Game.StartFEN != "" {
		if err := engine.Validate(c.Game.StartFEN); err != nil {
			return fmt.Errorf("%w: start_fen: %w", errors.ErrInvalidConfig, err)
		}
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Batch.Workers, errors.ErrInvalidConfig)
	}
	if c.Batch.QueueSize < 0 {
		return fmt.Errorf("queue_size (%d) must not be negative: %w", c.Batch.QueueSize, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// StartFEN returns the configured start position, or the initial position.
func (c *Config) StartFEN() string {
	if c.Game.StartFEN == "" {
		return engine.InitialFEN
	}
	return c.Game.StartFEN
}
