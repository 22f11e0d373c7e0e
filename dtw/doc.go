// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, univariate or vector-valued.
//
// What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Two series that follow the same
//	shape at different paces end up close even when a point-by-point
//	comparison would call them far apart.
//
// Key features:
//   - one recurrence shared by every caller: scalar samples use |x−y|,
//     vector samples use the Euclidean norm of x−y
//   - full-matrix mode: exact O(N·M) time & memory, optional warping path
//   - two-rows mode: O(M) memory when only the distance is needed
//   - lengths may differ; empty or NaN input fails explicitly
//
// There is deliberately no Sakoe–Chiba window or slope penalty: every cell
// of the cost matrix is evaluated.
//
// Usage:
//
//	import "github.com/katalvlaran/seqsim/dtw"
//
//	opts := dtw.Options{MemoryMode: dtw.FullMatrix, ReturnPath: true}
//	dist, path, err := dtw.Distance(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M·D)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// The engine is a pure function: identical inputs always produce identical
// output and nothing outlives the call.
package dtw
