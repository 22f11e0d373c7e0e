// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/seqsim/sequence"
)

// DTW - Dynamic Time Warping
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)×(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n, j = 1..m:
//     D[i][j] = local(a[i-1], b[j-1]) + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the predecessor
//     with minimal D-value (diagonal preferred on ties).
//
// local is |x−y| for scalar samples and the Euclidean norm of x−y for vector
// samples. There is no window constraint: every cell is evaluated.
//
// Complexity:
//
//	Time   = O(n·m·d)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)

// DTW computes the DTW distance between two univariate series.
//
// Errors: ErrEmptyInput, ErrNaNInput, ErrPathNeedsMatrix, ErrBadInput.
//
// Example:
//
//	opts := dtw.Options{ReturnPath: true, MemoryMode: dtw.FullMatrix}
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if hasNaN(a) || hasNaN(b) {
		return 0, nil, ErrNaNInput
	}

	return run(len(a), len(b), func(i, j int) float64 {
		return math.Abs(a[i] - b[j])
	}, opts)
}

// Distance computes the DTW distance between two Sequences of equal
// dimensionality. Lengths may differ.
//
// Stage 1 (Validate): non-empty, same Dim, no NaN samples.
// Stage 2 (Execute): run the recurrence with the Euclidean local distance.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrNaNInput,
// ErrPathNeedsMatrix, ErrBadInput.
func Distance(a, b sequence.Sequence, opts *Options) (float64, []Coord, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return 0, nil, ErrEmptyInput
	}
	if a.Dim() != b.Dim() {
		return 0, nil, ErrDimensionMismatch
	}
	if a.HasMissing() || b.HasMissing() {
		return 0, nil, ErrNaNInput
	}

	if a.Dim() == 1 {
		return run(a.Len(), b.Len(), func(i, j int) float64 {
			return math.Abs(a.At(i, 0) - b.At(j, 0))
		}, opts)
	}

	return run(a.Len(), b.Len(), func(i, j int) float64 {
		return floats.Distance(a.Row(i), b.Row(j), 2)
	}, opts)
}

// run resolves options and dispatches to the storage-specific kernel.
func run(n, m int, local func(i, j int) float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.MemoryMode {
	case FullMatrix:
	case TwoRows:
		if o.ReturnPath {
			return 0, nil, ErrPathNeedsMatrix
		}
		return twoRows(n, m, local), nil, nil
	default:
		return 0, nil, ErrBadInput
	}

	dp := fullMatrix(n, m, local)
	if !o.ReturnPath {
		return dp[n][m], nil, nil
	}

	return dp[n][m], backtrack(dp, n, m), nil
}

// fullMatrix fills and returns the whole (n+1)×(m+1) cost matrix.
func fullMatrix(n, m int, local func(i, j int) float64) [][]float64 {
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			dp[i][j] = local(i-1, j-1) + min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
		}
	}

	return dp
}

// twoRows computes D[n][m] keeping only the previous and current rows.
func twoRows(n, m int, local func(i, j int) float64) float64 {
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			curr[j] = local(i-1, j-1) + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) to (1,1), preferring the diagonal on ties,
// and returns the path in forward order as 0-based sample indices.
func backtrack(dp [][]float64, n, m int) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j], dp[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// hasNaN reports whether any value is NaN.
func hasNaN(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
