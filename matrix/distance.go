// SPDX-License-Identifier: MIT
// Package: matrix
//
// distance.go - labelled symmetric distance matrix with a validity mask.
//
// Contract:
//   • Square, symmetric, zero diagonal, every stored value finite and ≥ 0.
//   • Off-diagonal cells are either present or missing; missing cells are
//     never reported as 0.
//   • A DistanceBuilder is the single writer; Build hands out an immutable
//     Distance and detaches the builder from it.

package matrix

import (
	"fmt"
	"math"
)

// Distance is an entity × entity distance matrix.
type Distance struct {
	labels []string
	index  map[string]int
	vals   *Dense
	valid  []bool // n*n, row-major; diagonal always true
}

// DistanceBuilder accumulates pairwise distances for a fixed label set.
type DistanceBuilder struct {
	d *Distance
}

// NewDistanceBuilder prepares an empty n×n Distance for the given labels.
// Stage 1 (Validate): at least one label, no duplicates, no empty labels.
// Stage 2 (Prepare): allocate Dense storage and the validity mask.
// Errors: ErrInvalidDimensions, ErrDuplicateLabel.
// Complexity: O(n²).
func NewDistanceBuilder(labels []string) (*DistanceBuilder, error) {
	n := len(labels)
	vals, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewDistanceBuilder", err)
	}

	index := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := index[l]; dup || l == "" {
			return nil, matrixErrorf(fmt.Sprintf("NewDistanceBuilder(%q)", l), ErrDuplicateLabel)
		}
		index[l] = i
	}

	valid := make([]bool, n*n)
	for i := 0; i < n; i++ {
		valid[i*n+i] = true
	}

	return &DistanceBuilder{d: &Distance{
		labels: append([]string(nil), labels...),
		index:  index,
		vals:   vals,
		valid:  valid,
	}}, nil
}

// Set stores v as the distance between entities i and j (both halves).
// Errors: ErrOutOfRange, ErrDiagonalWrite, ErrNaNInf, ErrNegativeDistance.
// Complexity: O(1).
func (b *DistanceBuilder) Set(i, j int, v float64) error {
	d := b.d
	n := len(d.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return matrixErrorf(fmt.Sprintf("DistanceBuilder.Set(%d,%d)", i, j), ErrOutOfRange)
	}
	if i == j {
		return matrixErrorf(fmt.Sprintf("DistanceBuilder.Set(%d,%d)", i, j), ErrDiagonalWrite)
	}
	if err := ValidateDistanceValue(v); err != nil {
		return matrixErrorf(fmt.Sprintf("DistanceBuilder.Set(%d,%d)", i, j), err)
	}

	// In range, so Dense.Set cannot fail.
	_ = d.vals.Set(i, j, v)
	_ = d.vals.Set(j, i, v)
	d.valid[i*n+j] = true
	d.valid[j*n+i] = true

	return nil
}

// SetByLabel is Set addressed by entity names.
func (b *DistanceBuilder) SetByLabel(a, c string, v float64) error {
	i, ok := b.d.index[a]
	if !ok {
		return matrixErrorf(fmt.Sprintf("DistanceBuilder.SetByLabel(%q)", a), ErrOutOfRange)
	}
	j, ok := b.d.index[c]
	if !ok {
		return matrixErrorf(fmt.Sprintf("DistanceBuilder.SetByLabel(%q)", c), ErrOutOfRange)
	}

	return b.Set(i, j, v)
}

// Build returns the assembled Distance. The builder must not be used afterwards.
func (b *DistanceBuilder) Build() *Distance {
	d := b.d
	b.d = nil

	return d
}

// FromRows builds a Distance from a full square matrix supplied by a
// collaborator. NaN cells are read as missing.
// Stage 1 (Validate): labels vs shape, square rows.
// Stage 2 (Validate): zero diagonal, symmetry (NaN mirrors NaN), value policy.
// Stage 3 (Execute): copy present cells through a builder.
// Complexity: O(n²).
func FromRows(labels []string, rows [][]float64) (*Distance, error) {
	n := len(labels)
	if len(rows) != n {
		return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
	}
	b, err := NewDistanceBuilder(labels)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	raw, _ := NewDense(n, n) // n > 0 after NewDistanceBuilder
	for i, r := range rows {
		if len(r) != n {
			return nil, matrixErrorf("FromRows", ErrNonSquare)
		}
		for j, v := range r {
			_ = raw.Set(i, j, v)
		}
	}
	if err = ValidateZeroDiagonal(raw, 0); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	if err = ValidateSymmetric(raw, 0); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rows[i][j]
			if math.IsNaN(v) {
				continue
			}
			if err = b.Set(i, j, v); err != nil {
				return nil, matrixErrorf("FromRows", err)
			}
		}
	}

	return b.Build(), nil
}

// Len returns the number of entities.
func (d *Distance) Len() int { return len(d.labels) }

// Labels returns the entity names in matrix order.
func (d *Distance) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Index returns the matrix position of label.
func (d *Distance) Index(label string) (int, bool) {
	i, ok := d.index[label]

	return i, ok
}

// At returns the distance between entities i and j and whether it is known.
// Out-of-range indices report (0, false).
func (d *Distance) At(i, j int) (float64, bool) {
	n := len(d.labels)
	if i < 0 || i >= n || j < 0 || j >= n || !d.valid[i*n+j] {
		return 0, false
	}
	v, _ := d.vals.At(i, j)

	return v, true
}

// Get is At addressed by entity names.
func (d *Distance) Get(a, b string) (float64, bool) {
	i, ok := d.index[a]
	if !ok {
		return 0, false
	}
	j, ok := d.index[b]
	if !ok {
		return 0, false
	}

	return d.At(i, j)
}

// Row returns the known distances from entity i to every other entity,
// keyed by position. The diagonal is excluded.
func (d *Distance) Row(i int) map[int]float64 {
	out := make(map[int]float64)
	for j := 0; j < len(d.labels); j++ {
		if j == i {
			continue
		}
		if v, ok := d.At(i, j); ok {
			out[j] = v
		}
	}

	return out
}

// Missing returns the number of unordered pairs without a distance.
func (d *Distance) Missing() int {
	n := len(d.labels)
	miss := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !d.valid[i*n+j] {
				miss++
			}
		}
	}

	return miss
}

// Dense returns a copy of the values with missing cells set to NaN, for
// heatmap or export collaborators that expect a plain grid.
// Complexity: O(n²).
func (d *Distance) Dense() *Dense {
	out := d.vals.Clone()
	n := len(d.labels)
	for k, ok := range d.valid {
		if !ok {
			_ = out.Set(k/n, k%n, math.NaN())
		}
	}

	return out
}
