// SPDX-License-Identifier: MIT
// Package: preprocess
//
// errors.go - sentinel errors for the preprocessing stages.
//
// Error policy:
//   • Data-shape failures wrap the shared kinds from package sequence, so the
//     pairwise orchestrator classifies them without knowing this package.
//   • Callers match with errors.Is; context is attached with %w only.

package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqsim/sequence"
)

var (
	// ErrAllRowsRemoved indicates that outlier filtering left no rows.
	// Matches sequence.ErrInsufficientData.
	ErrAllRowsRemoved = fmt.Errorf("preprocess: outlier filter removed every row: %w", sequence.ErrInsufficientData)

	// ErrEmptyAlignment indicates that one side of an alignment is empty.
	// Matches sequence.ErrInsufficientData.
	ErrEmptyAlignment = fmt.Errorf("preprocess: aligned length is zero: %w", sequence.ErrInsufficientData)

	// ErrDimensionMismatch indicates sequences with different feature counts
	// in one comparison or one normalization pool. Matches sequence.ErrSchemaMismatch.
	ErrDimensionMismatch = fmt.Errorf("preprocess: feature counts differ: %w", sequence.ErrSchemaMismatch)

	// ErrMissingInPool indicates a NaN sample inside a normalization pool.
	// Matches sequence.ErrMissingValue.
	ErrMissingInPool = fmt.Errorf("preprocess: NaN in normalization pool: %w", sequence.ErrMissingValue)

	// ErrEmptyPool indicates that no sample was available to compute statistics.
	ErrEmptyPool = errors.New("preprocess: empty normalization pool")

	// ErrFeatureOutOfRange indicates a feature index outside [0, Dim()).
	ErrFeatureOutOfRange = errors.New("preprocess: feature index out of range")
)

// preprocessErrorf attaches the operation name to err.
func preprocessErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
