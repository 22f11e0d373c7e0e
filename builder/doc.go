// SPDX-License-Identifier: MIT

// Package builder provides deterministic synthetic sequences for tests,
// examples and benchmarks of the similarity pipeline.
//
// Generators (length n, seed, options) return a univariate sequence.Sequence:
//
//   - Sine:       A·sin(2π·f·i) plus trend and noise.
//   - Pulse:      rectangular or triangular pulse train.
//   - Chirp:      linear frequency sweep from f0 to f1.
//   - Noise:      Gaussian noise with standard deviation A.
//   - RandomWalk: cumulative sum of Gaussian steps of size A.
//
// Combinators work on existing sequences:
//
//   - Shift:        adds a constant to every value (translation).
//   - Stack:        joins univariate sequences of equal length into one
//     multivariate sequence, one feature per input.
//   - WithOutliers: overwrites chosen rows with spikes.
//
// Determinism: for a fixed (n, seed, options) the output is identical across
// runs. WithSeed / WithRand share one stream between calls; otherwise each
// call seeds its own source from the seed argument.
//
// Option constructors panic on meaningless values (negative noise, zero
// amplitude, nil RNG). Generators never panic; invalid sizes return ErrBadSize.
package builder
