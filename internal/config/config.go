// Package config provides configuration for movecheck.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Rules  RuleConfig
	Output OutputConfig

	// Workers is the number of goroutines evaluating fixture cases.
	Workers int

	// DuplicateCapacity bounds the repeated-case table (0 = unlimited).
	DuplicateCapacity int

	Verbosity int // 0=nothing, 1=summary, 2=running commentary
	Debug     bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      *NewRuleConfig(),
		Output:     *NewOutputConfig(),
		Workers:    1,
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when the configured verbosity reaches level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
