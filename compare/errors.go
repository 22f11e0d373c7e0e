// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqsim/sequence"
)

var (
	// ErrTooFewEntities indicates fewer than two entities (or columns).
	ErrTooFewEntities = errors.New("compare: at least two entities are required")

	// ErrColumnCount indicates two entities selecting different numbers of
	// columns. Matches sequence.ErrSchemaMismatch.
	ErrColumnCount = fmt.Errorf("compare: entities select different column counts: %w", sequence.ErrSchemaMismatch)
)

// compareErrorf attaches the workflow name to err.
func compareErrorf(op string, err error) error {
	return fmt.Errorf("compare: %s: %w", op, err)
}
