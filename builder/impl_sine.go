// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_sine.go - sine wave, the default fixture of the similarity tests.

package builder

import (
	"math"

	"github.com/katalvlaran/seqsim/sequence"
)

const defSineFreq = 0.05 // period 20 samples

// Sine returns yᵢ = A·sin(τ·f·i) + trend·i + noise for i in [0, n).
// Errors: ErrBadSize when n < 1.
// Complexity: O(n).
func Sine(n int, seed int64, opts ...BuilderOption) (sequence.Sequence, error) {
	if n < 1 {
		return sequence.Sequence{}, builderErrorf("Sine", ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)
	w := tau * cfg.freqOr(defSineFreq)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.amplitude * math.Sin(w*float64(i))
	}

	return finish(out, cfg, rng), nil
}
