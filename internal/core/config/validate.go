package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/tagtree/internal/core/parser"
)

// Validate checks that the configuration is structurally valid: every glob
// compiles, the custom pattern builds against the configured tags, the
// output format is known, and numeric limits are non-negative.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateGlobs(),
		c.validatePattern(),
		c.validateFormat(),
		c.validateLimits(),
	)
}

func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Include {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("include[%d]", i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	for i, p := range c.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("exclude[%d]", i), fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	return errs.ToError()
}

func (c *Config) validatePattern() error {
	if c.CustomPattern == "" {
		return nil
	}
	if _, err := parser.BuildPattern(c.Tags, c.CaseSensitive, c.CustomPattern); err != nil {
		return criterio.NewFieldErrors("custom_pattern", err)
	}
	return nil
}

func (c *Config) validateFormat() error {
	switch c.Format {
	case "", FormatTree, FormatFlat, FormatJSON:
		return nil
	default:
		return criterio.NewFieldErrors("format", fmt.Errorf("unknown format %q, expected tree, flat, or json", c.Format))
	}
}

func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	if c.MaxDepth < 0 {
		errs = errs.Append("max_depth", fmt.Errorf("must not be negative, got %d", c.MaxDepth))
	}
	if c.Threads < 0 {
		errs = errs.Append("threads", fmt.Errorf("must not be negative, got %d", c.Threads))
	}
	return errs.ToError()
}
