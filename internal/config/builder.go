package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// FromConfig starts the builder from an existing configuration, such as
// one loaded from a file, so that flags can override it.
func FromConfig(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// WithStartFEN sets the position play starts from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithHistory includes the FEN after every ply in the output.
func (b *ConfigBuilder) WithHistory(enabled bool) *ConfigBuilder {
	b.cfg.Output.History = enabled
	return b
}

// WithLevel sets the computer's strength.
func (b *ConfigBuilder) WithLevel(level int) *ConfigBuilder {
	b.cfg.Analysis.Level = level
	return b
}

// WithHuman sets the colour played by the person.
func (b *ConfigBuilder) WithHuman(colour string) *ConfigBuilder {
	b.cfg.Analysis.Human = colour
	return b
}

// WithWorkers sets the number of validation workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithDuplicateReport enables duplicate position reporting.
func (b *ConfigBuilder) WithDuplicateReport(enabled bool, maxPositions int) *ConfigBuilder {
	b.cfg.Duplicate.Report = enabled
	b.cfg.Duplicate.MaxPositions = maxPositions
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
