// SPDX-License-Identifier: MIT
// Package: preprocess
//
// normalize.go - pooled z-score normalization.
//
// Contract:
//   • Statistics are population mean / standard deviation per feature over
//     every sample of every sequence in the pool (empty members skipped).
//   • Apply maps x → (x − mean)/std; a zero-std feature is an identity
//     transform and is listed in Stats.ZeroVariance.
//   • Stats are values: compute once, share read-only across pairs.

package preprocess

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/seqsim/sequence"
)

// Stats is the NormalizationStats of one pool.
type Stats struct {
	Mean         []float64
	Std          []float64
	ZeroVariance []int // features left unscaled
}

// Dim returns the number of features the statistics cover.
func (s Stats) Dim() int { return len(s.Mean) }

// ComputeStats pools every non-empty sequence and computes per-feature
// statistics.
// Stage 1 (Validate): shared dimensionality, at least one sample, no NaN.
// Stage 2 (Execute): gonum stat.PopMeanStdDev per pooled column.
// Errors: ErrDimensionMismatch, ErrEmptyPool, ErrMissingInPool.
// Complexity: O(total samples · d).
func ComputeStats(seqs ...sequence.Sequence) (Stats, error) {
	dim := 0
	total := 0
	for _, s := range seqs {
		if s.IsEmpty() {
			continue
		}
		if dim == 0 {
			dim = s.Dim()
		} else if s.Dim() != dim {
			return Stats{}, preprocessErrorf("ComputeStats", ErrDimensionMismatch)
		}
		if s.HasMissing() {
			return Stats{}, preprocessErrorf("ComputeStats", ErrMissingInPool)
		}
		total += s.Len()
	}
	if total == 0 {
		return Stats{}, preprocessErrorf("ComputeStats", ErrEmptyPool)
	}

	st := Stats{Mean: make([]float64, dim), Std: make([]float64, dim)}
	pool := make([]float64, 0, total)
	for f := 0; f < dim; f++ {
		pool = pool[:0]
		for _, s := range seqs {
			if s.IsEmpty() {
				continue
			}
			for i := 0; i < s.Len(); i++ {
				pool = append(pool, s.At(i, f))
			}
		}
		st.Mean[f], st.Std[f] = stat.PopMeanStdDev(pool, nil)
		if st.Std[f] == 0 {
			st.ZeroVariance = append(st.ZeroVariance, f)
		}
	}

	return st, nil
}

// Apply z-scores seq with s. Empty sequences pass through unchanged.
// Errors: ErrDimensionMismatch.
func (s Stats) Apply(seq sequence.Sequence) (sequence.Sequence, error) {
	if seq.IsEmpty() {
		return seq, nil
	}
	if seq.Dim() != s.Dim() {
		return sequence.Sequence{}, preprocessErrorf("Stats.Apply", ErrDimensionMismatch)
	}

	return seq.Map(func(f int, v float64) float64 {
		if s.Std[f] == 0 {
			return v
		}
		return (v - s.Mean[f]) / s.Std[f]
	}), nil
}

// Normalize computes Stats over seqs and applies them to each one.
// The result has the same order as the input.
func Normalize(seqs ...sequence.Sequence) ([]sequence.Sequence, Stats, error) {
	st, err := ComputeStats(seqs...)
	if err != nil {
		return nil, Stats{}, err
	}
	out := make([]sequence.Sequence, len(seqs))
	for i, s := range seqs {
		if out[i], err = st.Apply(s); err != nil {
			return nil, Stats{}, err
		}
	}

	return out, st, nil
}
