// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqsim/sequence"
)

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix - keep the entire (n+1)×(m+1) cost matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows - only keep the previous and current row.
//     Memory: O(m); the path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - MemoryMode - FullMatrix (default) or TwoRows storage.
//   - ReturnPath - if true, DTW backtracks and returns the optimal warping
//     path. Requires MemoryMode=FullMatrix.
//
// Both modes compute the same distance; they differ only in memory and in
// whether the path is available.
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
}

// DefaultOptions returns FullMatrix storage without path recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// Coord is one step of a warping path: sample I of the first sequence is
// matched with sample J of the second (0-based).
type Coord struct {
	I, J int
}

var (
	// ErrEmptyInput indicates one or both inputs have no samples.
	// It matches sequence.ErrInsufficientData under errors.Is.
	ErrEmptyInput = fmt.Errorf("dtw: input sequences must be non-empty: %w", sequence.ErrInsufficientData)

	// ErrDimensionMismatch indicates samples of different widths.
	// It matches sequence.ErrSchemaMismatch under errors.Is.
	ErrDimensionMismatch = fmt.Errorf("dtw: sample dimensions differ: %w", sequence.ErrSchemaMismatch)

	// ErrNaNInput indicates a NaN sample; the recurrence would silently
	// propagate it into the distance. Matches sequence.ErrMissingValue.
	ErrNaNInput = fmt.Errorf("dtw: NaN sample: %w", sequence.ErrMissingValue)

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadInput indicates an unknown MemoryMode.
	ErrBadInput = errors.New("dtw: invalid options")
)
