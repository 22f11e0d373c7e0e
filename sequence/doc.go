// SPDX-License-Identifier: MIT

// Package sequence holds the strictly-typed inputs of seqsim: Sequence (an
// immutable n×d block of samples with optional timestamps), Set (a named,
// insertion-ordered collection of sequences) and Table (parsed tabular input
// handed over by I/O collaborators).
//
// Shapes are checked at the boundary. A Sequence never contains rows of
// different widths, so downstream stages (outlier filter, normalizer, DTW)
// only have to compare Dim() values instead of inspecting every sample.
//
// The package also owns the error kinds shared by every stage:
//
//	ErrInsufficientData - a sequence became empty (filtering, alignment, DTW input)
//	ErrSchemaMismatch   - compared sequences disagree on dimensionality
//	ErrMissingValue     - a NaN sample reached a stage that cannot ignore it
//
// Package-specific sentinels elsewhere wrap these, so errors.Is(err,
// sequence.ErrInsufficientData) holds no matter which stage raised it.
package sequence
