// SPDX-License-Identifier: MIT
// Package: ranking
//
// ranking.go - mean-distance ranking over a labelled distance matrix.
//
// Contract:
//   • An entity's score is the arithmetic mean of its known distances to the
//     other entities. The diagonal is excluded by position, so a genuine zero
//     distance between two different entities still counts.
//   • Missing cells are skipped. With no known distance the score is NaN and
//     Compared is 0.
//   • Sort is stable and always places NaN scores last.

package ranking

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/seqsim/matrix"
)

// Entry is the RankingEntry of one entity.
type Entry struct {
	Entity   string
	Mean     float64 // mean distance to the other entities; NaN if none known
	Compared int     // number of distances averaged
}

// Order selects the Sort direction.
type Order int

const (
	// Descending puts the most dissimilar entity first.
	Descending Order = iota
	// Ascending puts the most similar entity first.
	Ascending
)

// Rank scores every entity of d in matrix order.
// Complexity: O(N²).
func Rank(d *matrix.Distance) []Entry {
	if d == nil {
		return nil
	}
	labels := d.Labels()
	out := make([]Entry, len(labels))
	buf := make([]float64, 0, len(labels))
	for i, name := range labels {
		buf = buf[:0]
		for j := range labels {
			if j == i {
				continue
			}
			if v, ok := d.At(i, j); ok {
				buf = append(buf, v)
			}
		}
		e := Entry{Entity: name, Mean: math.NaN(), Compared: len(buf)}
		if len(buf) > 0 {
			e.Mean = stat.Mean(buf, nil)
		}
		out[i] = e
	}

	return out
}

// Sort returns a copy of entries ordered by Mean. Ties keep their input
// order; NaN scores come last in either direction.
// Complexity: O(N log N).
func Sort(entries []Entry, order Order) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(a, b int) bool {
		x, y := out[a].Mean, out[b].Mean
		switch {
		case math.IsNaN(x):
			return false
		case math.IsNaN(y):
			return true
		case order == Ascending:
			return x < y
		default:
			return x > y
		}
	})

	return out
}

// MostDissimilar returns the entity with the highest mean distance.
// The boolean is false when no entity has a score.
func MostDissimilar(entries []Entry) (Entry, bool) {
	return first(Sort(entries, Descending))
}

// MostSimilar returns the entity with the lowest mean distance.
func MostSimilar(entries []Entry) (Entry, bool) {
	return first(Sort(entries, Ascending))
}

func first(sorted []Entry) (Entry, bool) {
	if len(sorted) == 0 || math.IsNaN(sorted[0].Mean) {
		return Entry{}, false
	}

	return sorted[0], true
}
