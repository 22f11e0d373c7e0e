// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w through builderErrorf.
//   • Generators never panic; option constructors do on programmer error.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqsim/sequence"
)

// ErrBadSize indicates an invalid length (n < 1) or a row index outside the
// sequence in WithOutliers.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNotUnivariate indicates that Stack received a multivariate input.
// Matches sequence.ErrSchemaMismatch.
var ErrNotUnivariate = fmt.Errorf("builder: stack input must be univariate: %w", sequence.ErrSchemaMismatch)

// ErrLengthMismatch indicates that Stack received inputs of different lengths.
// Matches sequence.ErrSchemaMismatch.
var ErrLengthMismatch = fmt.Errorf("builder: stack inputs differ in length: %w", sequence.ErrSchemaMismatch)

// builderErrorf attaches the generator name to err.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
