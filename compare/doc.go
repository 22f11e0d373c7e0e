// SPDX-License-Identifier: MIT

// Package compare wires preprocessing, DTW, the pairwise orchestrator and
// the ranking into the three comparison workflows:
//
//   - Two:     two entities, same column selection, one distance with a
//     processing report (rows before and after filtering, aligned length).
//   - Batch:   a collection of entities (files), full distance matrix and a
//     ranking by mean distance; per-pair failures never stop the batch.
//   - Columns: the selected columns of one table compared against each
//     other, each column treated as a univariate entity.
//
// Parsing files, rendering heatmaps and user interaction are left to the
// callers: the package takes parsed sequence.Table values and returns
// plain results.
package compare
