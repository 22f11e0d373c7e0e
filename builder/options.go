// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the generators.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig before
// any sample is produced.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every call that receives it.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. It overrides the
// seed argument of the generator it is passed to.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the signal amplitude A (>0). For Noise and RandomWalk
// it is the standard deviation of the draws.
// Panics if A <= 0.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f (>0, cycles/sample) of Sine and
// Pulse and the start frequency of Chirp.
// Panics if f <= 0.
func WithFrequency(f float64) BuilderOption {
	if f <= 0 {
		panic("builder: WithFrequency(f<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f
	}
}

// WithTrend adds k·i to sample i. Any real value is accepted.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise adds Gaussian noise of standard deviation sigma (>=0).
// Panics if sigma < 0. Draws come from the resolved RNG.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithTriangular switches Pulse to the triangular shape.
func WithTriangular() BuilderOption {
	return func(c *builderConfig) {
		c.triangular = true
	}
}

// WithDuty sets the rectangular Pulse duty cycle in [0,1].
// Panics outside that range.
func WithDuty(d float64) BuilderOption {
	if d < 0 || d > 1 {
		panic("builder: WithDuty(d∉[0,1])")
	}
	return func(c *builderConfig) {
		c.duty = d
	}
}
