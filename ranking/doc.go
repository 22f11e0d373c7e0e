// SPDX-License-Identifier: MIT

// Package ranking orders entities by their mean distance to all others, so
// the entity least like the rest of the collection surfaces first.
//
//	entries := ranking.Rank(result.Matrix)
//	top, ok := ranking.MostDissimilar(entries)
package ranking
