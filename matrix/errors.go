// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation tag
// via fmt.Errorf("%s: %w", op, err)) and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a label
	// list whose length differs from the number of rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry that is not zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeDistance signals a distance below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrDiagonalWrite signals an attempt to store a self-distance; the
	// diagonal of a Distance is structurally zero.
	ErrDiagonalWrite = errors.New("matrix: diagonal is fixed at zero")

	// ErrDuplicateLabel signals a label that occurs more than once.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
