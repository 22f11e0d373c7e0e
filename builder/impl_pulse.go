// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_pulse.go - deterministic rectangular/triangular pulse generator.
//
// Contract:
//   • Pulse(n, seed, opts...) returns a univariate sequence of length n.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and memory.

package builder

import (
	"math"

	"github.com/katalvlaran/seqsim/sequence"
)

const defPulseFreq = 0.125 // period 8 samples

// Pulse returns a length-n pulse train.
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction is below duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2·frac − 1| (no trig).
//
// Trend and noise are added afterwards.
// Errors: ErrBadSize when n < 1.
// Complexity: O(n).
func Pulse(n int, seed int64, opts ...BuilderOption) (sequence.Sequence, error) {
	if n < 1 {
		return sequence.Sequence{}, builderErrorf("Pulse", ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)
	f0 := cfg.freqOr(defPulseFreq)

	out := make([]float64, n)
	var frac float64
	for i := range out {
		frac = math.Mod(float64(i)*f0, unitOne)
		switch {
		case cfg.triangular:
			out[i] = cfg.amplitude * (unitOne - math.Abs(triDouble*frac-triCenter))
		case frac < cfg.duty:
			out[i] = cfg.amplitude
		default:
			out[i] = unitZero
		}
	}

	return finish(out, cfg, rng), nil
}
