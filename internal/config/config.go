// SPDX-License-Identifier: MIT
// Package: regpoly/internal/config
//
// config.go — CLI settings: defaults, YAML file loading and validation.
//
// Precedence (lowest to highest): Default() < file passed to Load < flags
// the caller applies afterwards.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the report renderer.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

const (
	defaultCircumradius = 1.0
	defaultMaxVertices  = 10
	defaultPrecision    = 5
	minMaxVertices      = 3
	maxPrecision        = 15
)

var (
	// ErrInvalidConfig indicates a field outside its allowed domain.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrLoad indicates the config file could not be read or decoded.
	ErrLoad = errors.New("config: cannot load file")
)

// Config holds the knobs shared by every regpoly command.
type Config struct {
	// Circumradius is the default R for describe, sequence and best.
	Circumradius float64 `yaml:"circumradius"`
	// MaxVertices is the default m for sequence and best.
	MaxVertices int `yaml:"max_vertices"`
	// Precision is the number of decimals printed for derived values.
	Precision int `yaml:"precision"`
	// Output is FormatTable or FormatYAML.
	Output string `yaml:"output"`
}

// Default returns the built-in settings: R=1, m=10, 5 decimals, table output.
func Default() Config {
	return Config{
		Circumradius: defaultCircumradius,
		MaxVertices:  defaultMaxVertices,
		Precision:    defaultPrecision,
		Output:       FormatTable,
	}
}

// Load reads path and overlays its fields on Default(). Keys absent from the
// file keep their default; unknown keys are rejected. The result is validated.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
// The circumradius is deliberately unchecked, matching polygon.New.
func (c Config) Validate() error {
	if c.MaxVertices < minMaxVertices {
		return fmt.Errorf("max_vertices=%d < %d: %w", c.MaxVertices, minMaxVertices, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("precision=%d not in [0,%d]: %w", c.Precision, maxPrecision, ErrInvalidConfig)
	}
	switch c.Output {
	case FormatTable, FormatYAML:
	default:
		return fmt.Errorf("output=%q not one of %q, %q: %w", c.Output, FormatTable, FormatYAML, ErrInvalidConfig)
	}

	return nil
}
