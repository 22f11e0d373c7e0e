// SPDX-License-Identifier: MIT
// Package: builder
//
// combinators.go - transforms over existing sequences.
//
// Contract:
//   • Inputs are never modified; every combinator returns a new Sequence.
//   • Timestamps of the input are carried over where rows are preserved.

package builder

import (
	"fmt"

	"github.com/katalvlaran/seqsim/sequence"
)

// Shift translates every value of seq by offset.
// Complexity: O(n·d).
func Shift(seq sequence.Sequence, offset float64) sequence.Sequence {
	return seq.Map(func(_ int, v float64) float64 { return v + offset })
}

// Stack joins univariate sequences of equal length into one sequence whose
// feature f is parts[f].
// Errors: ErrBadSize (no parts or empty parts), ErrNotUnivariate, ErrLengthMismatch.
// Complexity: O(n·len(parts)).
func Stack(parts ...sequence.Sequence) (sequence.Sequence, error) {
	if len(parts) == 0 {
		return sequence.Sequence{}, builderErrorf("Stack", ErrBadSize)
	}
	n := parts[0].Len()
	cols := make([][]float64, len(parts))
	for f, p := range parts {
		if p.Dim() != 1 {
			return sequence.Sequence{}, builderErrorf(fmt.Sprintf("Stack(%d)", f), ErrNotUnivariate)
		}
		if p.Len() != n {
			return sequence.Sequence{}, builderErrorf(fmt.Sprintf("Stack(%d)", f), ErrLengthMismatch)
		}
		cols[f] = p.Column(0)
	}
	if n == 0 {
		return sequence.Sequence{}, builderErrorf("Stack", ErrBadSize)
	}

	return sequence.FromColumns(cols...)
}

// WithOutliers returns seq with every feature of each row in rows replaced
// by height. Rows may repeat.
// Errors: ErrBadSize for a row outside [0, seq.Len()).
// Complexity: O(n·d + len(rows)).
func WithOutliers(seq sequence.Sequence, height float64, rows ...int) (sequence.Sequence, error) {
	hit := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		if r < 0 || r >= seq.Len() {
			return sequence.Sequence{}, builderErrorf(fmt.Sprintf("WithOutliers(%d)", r), ErrBadSize)
		}
		hit[r] = struct{}{}
	}
	d := seq.Dim()
	k := 0

	// Map visits values in row-major order, so k/d is the row index.
	return seq.Map(func(_ int, v float64) float64 {
		row := k / d
		k++
		if _, ok := hit[row]; ok {
			return height
		}
		return v
	}), nil
}
