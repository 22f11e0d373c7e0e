// SPDX-License-Identifier: MIT
// Package: preprocess
//
// outlier.go - interquartile-range outlier filter.
//
// Contract:
//   • Bounds per column: [Q1 − k·IQR, Q3 + k·IQR], IQR = Q3 − Q1.
//   • Quartiles use linear interpolation between closest ranks over the
//     non-NaN values (the estimator the tabular collaborators use).
//   • Multi-column form: a row survives only if every column is in bounds.
//   • NaN is never in bounds, so missing values always remove their row.
//   • Relative order and timestamps are preserved.

package preprocess

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/seqsim/sequence"
)

// Bounds are the IQR fences of one column.
type Bounds struct {
	Q1, Q3, IQR  float64
	Lower, Upper float64
}

// Contains reports whether v lies inside the closed fences.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Mask marks the rows kept by a filter (FilterMask).
type Mask []bool

// Kept returns the number of retained rows.
func (m Mask) Kept() int {
	n := 0
	for _, k := range m {
		if k {
			n++
		}
	}

	return n
}

// Removed returns the number of dropped rows.
func (m Mask) Removed() int { return len(m) - m.Kept() }

// quantile returns the p-quantile of sorted (non-empty) data by linear
// interpolation between closest ranks: h = (n−1)·p.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Quartiles returns Q1 and Q3 of the non-NaN values; ok is false when no
// such value exists.
// Complexity: O(n log n).
func Quartiles(values []float64) (q1, q3 float64, ok bool) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return math.NaN(), math.NaN(), false
	}
	sort.Float64s(clean)

	return quantile(clean, 0.25), quantile(clean, 0.75), true
}

// ColumnBounds computes the IQR fences of values for multiplier k.
// A column without any non-NaN value gets NaN fences that contain nothing.
func ColumnBounds(values []float64, k float64) Bounds {
	q1, q3, ok := Quartiles(values)
	if !ok {
		nan := math.NaN()
		return Bounds{Q1: nan, Q3: nan, IQR: nan, Lower: nan, Upper: nan}
	}
	iqr := q3 - q1

	return Bounds{Q1: q1, Q3: q3, IQR: iqr, Lower: q1 - k*iqr, Upper: q3 + k*iqr}
}

// IQRMask evaluates every feature of seq and intersects the per-column
// masks: one outlying feature removes the whole row.
// Complexity: O(d · n log n).
func IQRMask(seq sequence.Sequence, k float64) (Mask, []Bounds) {
	n, d := seq.Len(), seq.Dim()
	mask := make(Mask, n)
	for i := range mask {
		mask[i] = true
	}
	bounds := make([]Bounds, d)
	for f := 0; f < d; f++ {
		col := seq.Column(f)
		bounds[f] = ColumnBounds(col, k)
		for i, v := range col {
			if mask[i] && !bounds[f].Contains(v) {
				mask[i] = false
			}
		}
	}

	return mask, bounds
}

// FilterIQR is the multi-column outlier filter.
// Errors: ErrAllRowsRemoved when nothing survives.
func FilterIQR(seq sequence.Sequence, k float64) (sequence.Sequence, Mask, error) {
	mask, _ := IQRMask(seq, k)

	return applyMask("FilterIQR", seq, mask)
}

// FilterIQRColumn is the single-column outlier filter: only feature f is
// evaluated; other features of a kept row are carried along unchecked.
// Errors: ErrFeatureOutOfRange, ErrAllRowsRemoved.
func FilterIQRColumn(seq sequence.Sequence, f int, k float64) (sequence.Sequence, Mask, error) {
	if f < 0 || f >= seq.Dim() {
		return sequence.Sequence{}, nil, preprocessErrorf(fmt.Sprintf("FilterIQRColumn(%d)", f), ErrFeatureOutOfRange)
	}
	col := seq.Column(f)
	b := ColumnBounds(col, k)
	mask := make(Mask, len(col))
	for i, v := range col {
		mask[i] = b.Contains(v)
	}

	return applyMask("FilterIQRColumn", seq, mask)
}

// applyMask selects the kept rows and turns an empty result into an error.
func applyMask(op string, seq sequence.Sequence, mask Mask) (sequence.Sequence, Mask, error) {
	if mask.Kept() == 0 {
		return sequence.Empty(seq.Dim()), mask, preprocessErrorf(op, ErrAllRowsRemoved)
	}
	out, err := seq.Select(mask)
	if err != nil {
		return sequence.Sequence{}, nil, preprocessErrorf(op, err)
	}

	return out, mask, nil
}
