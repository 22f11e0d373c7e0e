// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqsim/dtw"
	"github.com/katalvlaran/seqsim/sequence"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput, which is also
// an insufficient-data condition, when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")
	assert.ErrorIs(t, err, sequence.ErrInsufficientData)

	_, _, err = dtw.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")

	_, _, err = dtw.Distance(sequence.Empty(2), sequence.Empty(2), &opts)
	assert.ErrorIs(t, err, sequence.ErrInsufficientData)
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with TwoRows mode errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.Options{MemoryMode: dtw.TwoRows, ReturnPath: true}

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)

	opts = dtw.Options{MemoryMode: dtw.MemoryMode(7)}
	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput)
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}
	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_HandComputed checks small tables worked out on paper:
// a=[1,2,3], b=[2,2,2,4] costs |1-2| for the first match and |3-4| for the last.
func TestDTW_HandComputed(t *testing.T) {
	dist, _, err := dtw.DTW([]float64{1, 2, 3}, []float64{2, 2, 2, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist)

	dist, _, err = dtw.DTW([]float64{0}, []float64{3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, dist, "a single sample is matched against every sample of the other side")
}

// TestDTW_SyntheticDistanceAndPath checks a perfect subsequence match
// and that the path length equals n + (m-n).
func TestDTW_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.Options{MemoryMode: dtw.FullMatrix, ReturnPath: true}

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_TwoRowsMatchesFullMatrix confirms both storage modes agree.
func TestDTW_TwoRowsMatchesFullMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 20; k++ {
		a := randomSeries(rng, 5+rng.Intn(30))
		b := randomSeries(rng, 5+rng.Intn(30))

		full, _, err := dtw.DTW(a, b, &dtw.Options{MemoryMode: dtw.FullMatrix})
		require.NoError(t, err)
		rows, path, err := dtw.DTW(a, b, &dtw.Options{MemoryMode: dtw.TwoRows})
		require.NoError(t, err)
		assert.Equal(t, full, rows)
		assert.Nil(t, path)
	}
}

// TestDTW_Properties checks identity, symmetry and non-negativity on random
// inputs of unequal length.
func TestDTW_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 25; k++ {
		a := randomRows(rng, 3+rng.Intn(25), 3)
		b := randomRows(rng, 3+rng.Intn(25), 3)

		self, _, err := dtw.Distance(a, a, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, self, "DTW(A, A) = 0")

		ab, _, err := dtw.Distance(a, b, nil)
		require.NoError(t, err)
		ba, _, err := dtw.Distance(b, a, nil)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9, "DTW(A, B) = DTW(B, A)")
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

// TestDistance_Multivariate uses the Euclidean norm of the sample difference.
func TestDistance_Multivariate(t *testing.T) {
	a, err := sequence.FromRows([][]float64{{0, 0}})
	require.NoError(t, err)
	b, err := sequence.FromRows([][]float64{{3, 4}})
	require.NoError(t, err)

	dist, _, err := dtw.Distance(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist)

	c, err := sequence.FromRows([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	dist, _, err = dtw.Distance(c, a, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, dist, 1e-12)

	_, _, err = dtw.Distance(a, sequence.FromValues([]float64{1}), nil)
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch)
	assert.ErrorIs(t, err, sequence.ErrSchemaMismatch)
}

// TestDistance_UnivariateMatchesDTW makes sure the Sequence entry point and
// the slice entry point share one recurrence.
func TestDistance_UnivariateMatchesDTW(t *testing.T) {
	a := []float64{1, 3, 4, 9, 8}
	b := []float64{1, 4, 5, 9, 7, 7}

	want, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	got, _, err := dtw.Distance(sequence.FromValues(a), sequence.FromValues(b), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDTW_NaNRejected verifies NaN never leaks into a distance.
func TestDTW_NaNRejected(t *testing.T) {
	_, _, err := dtw.DTW([]float64{1, math.NaN()}, []float64{1}, nil)
	assert.ErrorIs(t, err, dtw.ErrNaNInput)
	assert.ErrorIs(t, err, sequence.ErrMissingValue)

	_, _, err = dtw.Distance(sequence.FromValues([]float64{1}), sequence.FromValues([]float64{math.NaN()}), nil)
	assert.ErrorIs(t, err, sequence.ErrMissingValue)
}

func randomSeries(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}

func randomRows(rng *rand.Rand, n, d int) sequence.Sequence {
	cols := make([][]float64, d)
	for j := range cols {
		cols[j] = randomSeries(rng, n)
	}
	s, err := sequence.FromColumns(cols...)
	if err != nil {
		panic(err)
	}

	return s
}
