// Package seqsim measures how alike time series are and finds the one that
// fits least with the rest.
//
// What it does:
//
//	• Outlier filtering: IQR fences per feature, rows dropped on any violation
//	• Normalization: pooled z-scores, pairwise or over the whole collection
//	• Alignment: both sequences cut to the shorter length
//	• Dynamic Time Warping: univariate |x−y| or multivariate Euclidean cost
//	• Pairwise matrix: every entity against every other, failures recorded
//	• Ranking: mean distance to all others, most dissimilar first
//
// Packages:
//
//	sequence/   - Sequence, Set and Table: the data model and shared error kinds
//	config/     - Config with YAML loading (IQR multiplier, pooling policy, columns)
//	preprocess/ - outlier filter, normalizer, aligner and the Pipeline tying them
//	dtw/        - the DTW engine (full matrix with path, or two rows)
//	matrix/     - Dense storage and the labelled Distance matrix
//	pairwise/   - the orchestrator over all unordered pairs
//	ranking/    - mean-distance ranking
//	compare/    - Two, Batch and Columns workflows
//	builder/    - deterministic synthetic sequences for tests and demos
//
// Quick start:
//
//	rep, err := compare.Batch(ctx, entities, compare.BatchConfig().WithColumns("temp", "humidity"))
//	top, _ := ranking.MostDissimilar(rep.Ranking)
//
// File parsing, heatmap rendering and user interaction stay with the caller.
package seqsim
