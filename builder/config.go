// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • frequency == 0 means "use the generator's own default".
//
// Defaults:
//   • rng        = nil   (each call seeds from its seed argument)
//   • amplitude  = 1.0
//   • frequency  = 0     (Sine 0.05, Pulse 0.125, Chirp start 0.02)
//   • trendK     = 0.0
//   • noiseSigma = 0.0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type builderConfig struct {
	rng        *rand.Rand // shared stream; nil means per-call source
	amplitude  float64    // > 0
	frequency  float64    // cycles/sample; 0 = generator default
	trendK     float64    // added k·i per sample
	noiseSigma float64    // additive Gaussian stdev, ≥ 0
	triangular bool       // Pulse shape
	duty       float64    // Pulse rectangular duty in [0,1]
}

const (
	defaultAmplitude  = 1.0
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultDuty       = 0.5
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		duty:       defaultDuty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// freqOr returns the configured frequency or def when none was set.
func (c builderConfig) freqOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}

	return def
}
