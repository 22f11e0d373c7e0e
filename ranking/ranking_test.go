// SPDX-License-Identifier: MIT

package ranking_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqsim/matrix"
	"github.com/katalvlaran/seqsim/ranking"
)

// TestRank_HandComputed: row means without the diagonal.
//
//	    a  b  c
//	a   0  2  4   → (2+4)/2 = 3
//	b   2  0  6   → (2+6)/2 = 4
//	c   4  6  0   → (4+6)/2 = 5
func TestRank_HandComputed(t *testing.T) {
	d, err := matrix.FromRows([]string{"a", "b", "c"}, [][]float64{
		{0, 2, 4},
		{2, 0, 6},
		{4, 6, 0},
	})
	require.NoError(t, err)

	got := ranking.Rank(d)
	assert.Equal(t, []ranking.Entry{
		{Entity: "a", Mean: 3, Compared: 2},
		{Entity: "b", Mean: 4, Compared: 2},
		{Entity: "c", Mean: 5, Compared: 2},
	}, got)

	top, ok := ranking.MostDissimilar(got)
	require.True(t, ok)
	assert.Equal(t, "c", top.Entity)
	low, ok := ranking.MostSimilar(got)
	require.True(t, ok)
	assert.Equal(t, "a", low.Entity)
}

// TestRank_ZeroDistanceCounts keeps a real zero between two entities.
func TestRank_ZeroDistanceCounts(t *testing.T) {
	d, err := matrix.FromRows([]string{"a", "b", "c"}, [][]float64{
		{0, 0, 3},
		{0, 0, 3},
		{3, 3, 0},
	})
	require.NoError(t, err)

	got := ranking.Rank(d)
	assert.Equal(t, 1.5, got[0].Mean)
	assert.Equal(t, 2, got[0].Compared)
	assert.Equal(t, 3.0, got[2].Mean)
}

func TestRank_MissingCells(t *testing.T) {
	nan := math.NaN()
	d, err := matrix.FromRows([]string{"a", "b", "c"}, [][]float64{
		{0, 1, nan},
		{1, 0, nan},
		{nan, nan, 0},
	})
	require.NoError(t, err)

	got := ranking.Rank(d)
	assert.Equal(t, 1.0, got[0].Mean)
	assert.Equal(t, 1, got[0].Compared)
	assert.True(t, math.IsNaN(got[2].Mean))
	assert.Equal(t, 0, got[2].Compared)

	sorted := ranking.Sort(got, ranking.Descending)
	assert.Equal(t, "c", sorted[2].Entity, "NaN last")
	sorted = ranking.Sort(got, ranking.Ascending)
	assert.Equal(t, "c", sorted[2].Entity, "NaN last either way")
}

func TestSort_Stable(t *testing.T) {
	in := []ranking.Entry{
		{Entity: "x", Mean: 1},
		{Entity: "y", Mean: 2},
		{Entity: "z", Mean: 1},
	}
	got := ranking.Sort(in, ranking.Ascending)
	assert.Equal(t, []string{"x", "z", "y"}, []string{got[0].Entity, got[1].Entity, got[2].Entity})
	assert.Equal(t, "x", in[0].Entity, "input untouched")

	got = ranking.Sort(in, ranking.Descending)
	assert.Equal(t, []string{"y", "x", "z"}, []string{got[0].Entity, got[1].Entity, got[2].Entity})
}

func TestMostDissimilar_NoScores(t *testing.T) {
	_, ok := ranking.MostDissimilar(nil)
	assert.False(t, ok)
	_, ok = ranking.MostSimilar([]ranking.Entry{{Entity: "a", Mean: math.NaN()}})
	assert.False(t, ok)
	assert.Nil(t, ranking.Rank(nil))
}
