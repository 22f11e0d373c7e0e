// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage and the labelled, symmetric
// distance matrix produced by pairwise comparisons.
//
// What is here:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Distance: an entity × entity matrix of non-negative distances with an
//     explicit zero diagonal and a validity mask. Pairs that could not be
//     compared are *missing* rather than stored as 0 or NaN, so aggregations
//     can tell "identical" from "unknown".
//   - Validators shared by both (square, symmetric, zero diagonal).
//
// A Distance is assembled through a DistanceBuilder (single writer) and is
// read-only once built:
//
//	b, _ := matrix.NewDistanceBuilder([]string{"a.csv", "b.csv", "c.csv"})
//	_ = b.Set(0, 1, 4.2)
//	_ = b.Set(1, 2, 0.7)
//	d := b.Build() // (0,2) stays missing
//
// Complexity: O(n²) memory for n labels; all accessors are O(1).
package matrix
