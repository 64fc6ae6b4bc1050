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

// WithInputFormat sets the input format.
func (b *ConfigBuilder) WithInputFormat(format InputFormat) *ConfigBuilder {
	b.cfg.Input.Format = format
	return b
}

// WithSkipInvalid controls whether bad records are skipped.
func (b *ConfigBuilder) WithSkipInvalid(skip bool) *ConfigBuilder {
	b.cfg.Input.SkipInvalid = skip
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithFEN controls whether records carry the position.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.IncludeFEN = enabled
	return b
}

// WithColours sets the analyzed sides.
func (b *ConfigBuilder) WithColours(colours ColourSelection) *ConfigBuilder {
	b.cfg.Colours = colours
	return b
}

// WithWorkers sets the number of extraction workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate position suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool, maxPositions int) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.MaxPositions = maxPositions
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
