// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - stochastic fixtures: white noise and random walk.
//
// Determinism policy:
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed/WithRand).
//   - Else → rand.New(rand.NewSource(seed)).

package builder

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/seqsim/sequence"
)

// Noise returns n independent draws from N(0, A²), then trend and noise
// options on top.
// Errors: ErrBadSize when n < 1.
// Complexity: O(n).
func Noise(n int, seed int64, opts ...BuilderOption) (sequence.Sequence, error) {
	if n < 1 {
		return sequence.Sequence{}, builderErrorf("Noise", ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.amplitude * rng.NormFloat64()
	}

	return finish(out, cfg, rng), nil
}

// RandomWalk returns the cumulative sum of n Gaussian steps of size A,
// starting from the first step.
// Errors: ErrBadSize when n < 1.
// Complexity: O(n).
func RandomWalk(n int, seed int64, opts ...BuilderOption) (sequence.Sequence, error) {
	if n < 1 {
		return sequence.Sequence{}, builderErrorf("RandomWalk", ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	steps := make([]float64, n)
	for i := range steps {
		steps[i] = cfg.amplitude * rng.NormFloat64()
	}
	out := make([]float64, n)
	floats.CumSum(out, steps)

	return finish(out, cfg, rng), nil
}
