// SPDX-License-Identifier: MIT
// Package: sequence
//
// errors.go - sentinel errors shared across seqsim.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Stage packages wrap these kinds (fmt.Errorf("op: %w", ErrX)) and never
//     compare error strings.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData indicates that a sequence has no samples left to
	// compare (all rows filtered out, aligned length zero, empty DTW input).
	ErrInsufficientData = errors.New("sequence: insufficient data")

	// ErrSchemaMismatch indicates that sequences (or rows of one sequence)
	// disagree on the number of features.
	ErrSchemaMismatch = errors.New("sequence: schema mismatch")

	// ErrMissingValue indicates a NaN sample where a finite value is required.
	ErrMissingValue = errors.New("sequence: missing value")

	// ErrDuplicateName is returned by Set.Add for an already registered name.
	ErrDuplicateName = errors.New("sequence: duplicate entity name")

	// ErrEmptyName is returned by Set.Add for an empty entity name.
	ErrEmptyName = errors.New("sequence: empty entity name")

	// ErrUnknownColumn is returned by Table.Select for a column that is not present.
	ErrUnknownColumn = errors.New("sequence: unknown column")

	// ErrNoColumns is returned when a selection names no columns at all.
	ErrNoColumns = errors.New("sequence: no columns selected")
)

// sequenceErrorf attaches the operation name to err.
func sequenceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
