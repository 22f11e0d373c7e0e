// SPDX-License-Identifier: MIT

// Package config holds the explicit configuration value passed into every
// seqsim stage. There are no process-wide settings: callers build a Config
// (Default, Parse or Load), validate it once and hand it down.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultIQRMultiplier is the Tukey fence factor k in [Q1 − k·IQR, Q3 + k·IQR].
const DefaultIQRMultiplier = 1.5

var (
	// ErrInvalidMultiplier indicates a negative, NaN or infinite IQR multiplier.
	ErrInvalidMultiplier = errors.New("config: iqr multiplier must be finite and >= 0")

	// ErrUnknownPooling indicates a normalization pooling policy other than
	// "pairwise" or "global".
	ErrUnknownPooling = errors.New("config: unknown normalization pooling")
)

// Pooling selects which samples feed the z-score statistics.
type Pooling string

const (
	// PoolPairwise computes statistics from exactly the two aligned sequences
	// being compared.
	PoolPairwise Pooling = "pairwise"

	// PoolGlobal computes statistics once over every filtered sequence of a
	// batch, before any pairwise comparison runs.
	PoolGlobal Pooling = "global"
)

// Valid reports whether p names a known policy.
func (p Pooling) Valid() bool {
	return p == PoolPairwise || p == PoolGlobal
}

// UnmarshalYAML rejects unknown policy names while decoding.
func (p *Pooling) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v := Pooling(s)
	if !v.Valid() {
		return fmt.Errorf("line %d: %q: %w", node.Line, s, ErrUnknownPooling)
	}
	*p = v

	return nil
}

// Config parameterizes the preprocessing pipeline and the workflows.
type Config struct {
	// IQRMultiplier is the outlier fence factor (default 1.5).
	IQRMultiplier float64 `yaml:"iqr_multiplier"`

	// Pooling chooses pairwise or global normalization statistics.
	Pooling Pooling `yaml:"normalization_pooling"`

	// SelectedColumns is the ordered list of columns compared per entity.
	// Order matters for multivariate comparisons.
	SelectedColumns []string `yaml:"selected_columns,omitempty"`

	// NormalizeUnivariate turns on z-scoring for single-feature comparisons.
	// Off by default: in one dimension scale differences are signal.
	NormalizeUnivariate bool `yaml:"normalize_univariate"`

	// SortByTime orders rows by timestamp before filtering when the input
	// carries timestamps.
	SortByTime bool `yaml:"sort_by_time"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		IQRMultiplier: DefaultIQRMultiplier,
		Pooling:       PoolPairwise,
		SortByTime:    true,
	}
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if math.IsNaN(c.IQRMultiplier) || math.IsInf(c.IQRMultiplier, 0) || c.IQRMultiplier < 0 {
		return ErrInvalidMultiplier
	}
	if !c.Pooling.Valid() {
		return fmt.Errorf("%q: %w", c.Pooling, ErrUnknownPooling)
	}

	return nil
}

// WithPooling returns a copy of c using policy p.
func (c Config) WithPooling(p Pooling) Config {
	c.Pooling = p

	return c
}

// WithColumns returns a copy of c selecting the given columns.
func (c Config) WithColumns(columns ...string) Config {
	c.SelectedColumns = append([]string(nil), columns...)

	return c
}

// Normalizes reports whether a comparison of dim features is z-scored.
// Multivariate comparisons always are; univariate ones only on request.
func (c Config) Normalizes(dim int) bool {
	if dim > 1 {
		return true
	}

	return c.NormalizeUnivariate
}

// Parse decodes YAML over Default() and validates the result.
// Fields absent from the document keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return Parse(data)
}
