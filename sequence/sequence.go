// SPDX-License-Identifier: MIT
// Package: sequence
//
// sequence.go - immutable row-major sample block.
//
// Contract:
//   • A Sequence is n rows × d features, d ≥ 1, stored flat in row-major order.
//   • Constructors copy their input; transforms return new values and never
//     mutate the receiver. Sharing backing storage between Sequences is safe
//     because nothing writes to it after construction.
//   • Timestamps are optional; when present there is exactly one per row.

package sequence

import (
	"math"
	"sort"
	"time"
)

// Sequence is an ordered list of samples of fixed dimensionality.
// The zero value is an empty sequence of dimension 0 and is only useful as
// a "no data" marker; use Empty(dim) for a typed empty sequence.
type Sequence struct {
	dim   int         // features per sample
	data  []float64   // len == n*dim, row-major
	times []time.Time // nil or len == n
}

// FromValues builds a univariate Sequence from values (copied).
// Complexity: O(n).
func FromValues(values []float64) Sequence {
	data := make([]float64, len(values))
	copy(data, values)

	return Sequence{dim: 1, data: data}
}

// FromRows builds a Sequence from row-major samples (copied).
// Stage 1 (Validate): at least one row; every row has the same non-zero width.
// Stage 2 (Execute): flatten into a single buffer.
// Errors: ErrInsufficientData (no rows), ErrSchemaMismatch (ragged or zero-width rows).
// Complexity: O(n·d).
func FromRows(rows [][]float64) (Sequence, error) {
	if len(rows) == 0 {
		return Sequence{}, sequenceErrorf("FromRows", ErrInsufficientData)
	}
	d := len(rows[0])
	if d == 0 {
		return Sequence{}, sequenceErrorf("FromRows", ErrSchemaMismatch)
	}

	data := make([]float64, 0, len(rows)*d)
	for _, r := range rows {
		if len(r) != d {
			return Sequence{}, sequenceErrorf("FromRows", ErrSchemaMismatch)
		}
		data = append(data, r...)
	}

	return Sequence{dim: d, data: data}, nil
}

// FromColumns builds a Sequence whose features are the given columns, in order.
// Zero-length columns yield a valid empty Sequence of dimension len(cols).
// Errors: ErrSchemaMismatch when no columns are given or lengths differ.
// Complexity: O(n·d).
func FromColumns(cols ...[]float64) (Sequence, error) {
	d := len(cols)
	if d == 0 {
		return Sequence{}, sequenceErrorf("FromColumns", ErrSchemaMismatch)
	}
	n := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) != n {
			return Sequence{}, sequenceErrorf("FromColumns", ErrSchemaMismatch)
		}
	}

	data := make([]float64, n*d)
	for j, c := range cols {
		for i, v := range c {
			data[i*d+j] = v
		}
	}

	return Sequence{dim: d, data: data}, nil
}

// Empty returns an empty Sequence of the given dimension.
func Empty(dim int) Sequence {
	return Sequence{dim: dim}
}

// WithTimes returns a copy of s carrying one timestamp per row.
// A zero time.Time marks a missing timestamp.
// Errors: ErrSchemaMismatch when len(times) != s.Len().
func (s Sequence) WithTimes(times []time.Time) (Sequence, error) {
	if len(times) != s.Len() {
		return Sequence{}, sequenceErrorf("WithTimes", ErrSchemaMismatch)
	}
	ts := make([]time.Time, len(times))
	copy(ts, times)
	s.times = ts

	return s, nil
}

// Len returns the number of samples.
func (s Sequence) Len() int {
	if s.dim == 0 {
		return 0
	}

	return len(s.data) / s.dim
}

// Dim returns the number of features per sample.
func (s Sequence) Dim() int { return s.dim }

// IsEmpty reports whether s has no samples.
func (s Sequence) IsEmpty() bool { return s.Len() == 0 }

// At returns feature f of sample i. Indices are not checked beyond the
// runtime slice bounds; callers iterate within Len()/Dim().
func (s Sequence) At(i, f int) float64 {
	return s.data[i*s.dim+f]
}

// Row returns sample i as a read-only view into the backing storage.
// Callers must not modify the returned slice.
func (s Sequence) Row(i int) []float64 {
	return s.data[i*s.dim : (i+1)*s.dim : (i+1)*s.dim]
}

// Column returns a copy of feature f across all samples.
// Complexity: O(n).
func (s Sequence) Column(f int) []float64 {
	n := s.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.data[i*s.dim+f]
	}

	return out
}

// Values returns a copy of the raw row-major buffer.
func (s Sequence) Values() []float64 {
	out := make([]float64, len(s.data))
	copy(out, s.data)

	return out
}

// HasTimes reports whether the sequence carries timestamps.
func (s Sequence) HasTimes() bool { return s.times != nil }

// Times returns a copy of the timestamps, or nil.
func (s Sequence) Times() []time.Time {
	if s.times == nil {
		return nil
	}
	out := make([]time.Time, len(s.times))
	copy(out, s.times)

	return out
}

// HasMissing reports whether any sample value is NaN.
func (s Sequence) HasMissing() bool {
	for _, v := range s.data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// Head returns the first n samples (all of them when n ≥ Len()).
// The result shares storage with s.
func (s Sequence) Head(n int) Sequence {
	if n < 0 {
		n = 0
	}
	if n >= s.Len() {
		return s
	}
	out := Sequence{dim: s.dim, data: s.data[: n*s.dim : n*s.dim]}
	if s.times != nil {
		out.times = s.times[:n:n]
	}

	return out
}

// Select returns the samples whose mask entry is true, in original order.
// Errors: ErrSchemaMismatch when len(mask) != s.Len().
// Complexity: O(n·d).
func (s Sequence) Select(mask []bool) (Sequence, error) {
	n := s.Len()
	if len(mask) != n {
		return Sequence{}, sequenceErrorf("Select", ErrSchemaMismatch)
	}

	out := Sequence{dim: s.dim, data: make([]float64, 0, len(s.data))}
	if s.times != nil {
		out.times = make([]time.Time, 0, n)
	}
	for i, keep := range mask {
		if !keep {
			continue
		}
		out.data = append(out.data, s.Row(i)...)
		if s.times != nil {
			out.times = append(out.times, s.times[i])
		}
	}

	return out, nil
}

// Map returns a new Sequence of the same shape with fn applied to every
// value; fn receives the feature index and the original value.
// Timestamps are carried over.
func (s Sequence) Map(fn func(f int, v float64) float64) Sequence {
	out := Sequence{dim: s.dim, data: make([]float64, len(s.data)), times: s.times}
	for k, v := range s.data {
		out.data[k] = fn(k%s.dim, v)
	}

	return out
}

// SortByTime returns s with rows stably ordered by timestamp. Rows with a
// zero timestamp keep their relative order and go last. Without timestamps
// s is returned unchanged.
// Complexity: O(n log n + n·d).
func (s Sequence) SortByTime() Sequence {
	if s.times == nil {
		return s
	}
	n := s.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := s.times[idx[a]], s.times[idx[b]]
		if ta.IsZero() || tb.IsZero() {
			return !ta.IsZero() && tb.IsZero()
		}

		return ta.Before(tb)
	})

	out := Sequence{
		dim:   s.dim,
		data:  make([]float64, 0, len(s.data)),
		times: make([]time.Time, 0, n),
	}
	for _, i := range idx {
		out.data = append(out.data, s.Row(i)...)
		out.times = append(out.times, s.times[i])
	}

	return out
}
