// SPDX-License-Identifier: MIT

// Package pairwise computes the DTW distance between every unordered pair of
// entities of a sequence.Set and assembles the labelled distance matrix.
//
// Contract:
//
//   - Pairs are visited i<j in the set's insertion order; the diagonal is
//     zero and never computed.
//   - A pair that cannot be compared becomes a Failure with a Kind derived
//     from the shared error kinds of package sequence; its matrix cell stays
//     missing and the run continues.
//   - Per-pair preprocessing (alignment, pairwise normalization) is delegated
//     to a Preparer, typically a *preprocess.Pipeline.
//   - The context is checked between pairs. A cancelled run returns the
//     partial Result together with ctx.Err().
//
// Every run carries a RunID (UUID) that is attached to all of its log
// records as the "run" attribute.
//
// Complexity: O(N² · L_a · L_b · d) time for N entities; memory O(N²) for the
// matrix plus one transient DTW table at a time.
package pairwise
