// SPDX-License-Identifier: MIT
// Package: builder
//
// sequence_primitives.go - shared helpers for the generators.
//
// Contract:
//   • Pure helpers, no global state.
//   • finish applies trend then noise, in that order, for every generator.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/seqsim/sequence"
)

const (
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0 // triangular wave: 2*frac-1
	triCenter = 1.0
	tau       = 2.0 * math.Pi
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// finish adds the linear trend and the Gaussian noise to out in place and
// wraps it as a univariate Sequence.
// Complexity: O(n).
func finish(out []float64, cfg builderConfig, rng *rand.Rand) sequence.Sequence {
	n := len(out)
	if cfg.trendK != 0 && n > 1 {
		ramp := make([]float64, n)
		floats.Span(ramp, unitZero, cfg.trendK*float64(n-1))
		floats.Add(out, ramp)
	}
	if cfg.noiseSigma > 0 {
		for i := range out {
			out[i] += cfg.noiseSigma * rng.NormFloat64()
		}
	}

	return sequence.FromValues(out)
}
