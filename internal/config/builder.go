package config

import (
	"io"

	"github.com/lgbarn/movecheck-go/internal/engine"
)

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

// WithKingRule sets the king movement rule.
func (b *ConfigBuilder) WithKingRule(rule engine.KingRule) *ConfigBuilder {
	b.cfg.Rules.KingRule = rule
	return b
}

// WithCastling enables or disables castling.
func (b *ConfigBuilder) WithCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.Castling = enabled
	return b
}

// WithFixedBound sets a literal 1..n destination bound.
func (b *ConfigBuilder) WithFixedBound(n int) *ConfigBuilder {
	b.cfg.Rules.FixedBound = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithFailuresOnly limits the report to failing cases.
func (b *ConfigBuilder) WithFailuresOnly(enabled bool) *ConfigBuilder {
	b.cfg.Output.FailuresOnly = enabled
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
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

// WithDebug enables debug dumps.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Debug = enabled
	return b
}

// WithDuplicateCapacity bounds how many queries repeat detection remembers.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.DuplicateCapacity = n
	return b
}
