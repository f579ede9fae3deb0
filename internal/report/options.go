// SPDX-License-Identifier: MIT
// Package: regpoly/internal/report
//
// options.go — functional options for the report renderer.
//
// Contract (strict):
//   • Options are functional (type Option func(*renderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     rendering itself never panics.
//   • Later options override earlier ones.

package report

import (
	"fmt"

	"github.com/katalvlaran/regpoly/internal/config"
)

const maxPrecision = 15

// renderConfig aggregates every renderer knob. Passed by value.
type renderConfig struct {
	format    string // config.FormatTable or config.FormatYAML
	precision int    // decimals for derived values
	calls     bool   // include computation counters
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		format:    config.FormatTable,
		precision: 5,
	}
}

// Option customizes a Renderer.
type Option func(*renderConfig)

// WithFormat selects table or YAML output. Panics on any other value.
func WithFormat(format string) Option {
	switch format {
	case config.FormatTable, config.FormatYAML:
	default:
		panic(fmt.Sprintf("report: WithFormat(%q)", format))
	}
	return func(c *renderConfig) {
		c.format = format
	}
}

// WithPrecision sets the number of decimals. Panics outside [0,15].
func WithPrecision(decimals int) Option {
	if decimals < 0 || decimals > maxPrecision {
		panic(fmt.Sprintf("report: WithPrecision(%d)", decimals))
	}
	return func(c *renderConfig) {
		c.precision = decimals
	}
}

// WithCalls toggles the per-property computation counters in the output.
func WithCalls(on bool) Option {
	return func(c *renderConfig) {
		c.calls = on
	}
}

// FromConfig translates CLI settings into options.
func FromConfig(cfg config.Config) []Option {
	return []Option{WithFormat(cfg.Output), WithPrecision(cfg.Precision)}
}
