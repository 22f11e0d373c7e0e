// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chirp.go - deterministic linear chirp generator.
//
// Model:
//   - fi   = f0 + (f1 − f0)·i/(n−1)   (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ·fi                (phase accumulator, τ = 2π)
//   - yᵢ   = A·sin(θᵢ) + trend·i + noise

package builder

import (
	"math"

	"github.com/katalvlaran/seqsim/sequence"
)

const (
	defChirpF0 = 0.02 // start frequency
	defChirpF1 = 0.25 // end frequency
)

// Chirp returns a length-n linear chirp sweeping from f0 (WithFrequency,
// default 0.02) to 0.25 cycles/sample.
// Errors: ErrBadSize when n < 1.
// Complexity: O(n).
func Chirp(n int, seed int64, opts ...BuilderOption) (sequence.Sequence, error) {
	if n < 1 {
		return sequence.Sequence{}, builderErrorf("Chirp", ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)
	f0, f1 := cfg.freqOr(defChirpF0), defChirpF1

	out := make([]float64, n)
	theta := unitZero
	var t float64
	for i := range out {
		t = unitZero
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		out[i] = cfg.amplitude * math.Sin(theta)
	}

	return finish(out, cfg, rng), nil
}
