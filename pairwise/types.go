// SPDX-License-Identifier: MIT
// Package: pairwise
//
// types.go - pair outcomes, failure classification and the run result.

package pairwise

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/seqsim/matrix"
	"github.com/katalvlaran/seqsim/sequence"
)

// ErrEmptySet indicates a run over a nil or empty set.
var ErrEmptySet = errors.New("pairwise: no entities")

// FailureKind classifies why a pair was not compared.
type FailureKind int

const (
	// Unknown is any error outside the shared kinds.
	Unknown FailureKind = iota
	// InsufficientData: an entity had no samples left.
	InsufficientData
	// SchemaMismatch: the two entities disagree on features.
	SchemaMismatch
	// MissingValue: a NaN sample reached the distance computation.
	MissingValue
)

// String returns the kind name used in logs.
func (k FailureKind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient_data"
	case SchemaMismatch:
		return "schema_mismatch"
	case MissingValue:
		return "missing_value"
	default:
		return "unknown"
	}
}

// Classify maps err onto a FailureKind via errors.Is.
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, sequence.ErrInsufficientData):
		return InsufficientData
	case errors.Is(err, sequence.ErrSchemaMismatch):
		return SchemaMismatch
	case errors.Is(err, sequence.ErrMissingValue):
		return MissingValue
	default:
		return Unknown
	}
}

// Pair is one successful comparison.
type Pair struct {
	A, B     string
	Distance float64
	Length   int // length of A as compared (after preparation)
}

// Failure is one pair that could not be compared.
type Failure struct {
	A, B string
	Kind FailureKind
	Err  error
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("pairwise: %s vs %s: %s: %v", f.A, f.B, f.Kind, f.Err)
}

// Unwrap exposes the underlying cause to errors.Is.
func (f Failure) Unwrap() error { return f.Err }

// Progress is reported after each visited pair.
type Progress struct {
	Done, Total int
	A, B        string
}

// Result is the outcome of one run.
type Result struct {
	RunID    uuid.UUID
	Matrix   *matrix.Distance
	Pairs    []Pair
	Failures []Failure
}

// Distance returns the distance between entities a and b, or false when the
// pair failed, was not reached, or a name is unknown.
func (r *Result) Distance(a, b string) (float64, bool) {
	return r.Matrix.Get(a, b)
}

// FailuresOf returns the failures that involve entity name.
func (r *Result) FailuresOf(name string) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		if f.A == name || f.B == name {
			out = append(out, f)
		}
	}

	return out
}
