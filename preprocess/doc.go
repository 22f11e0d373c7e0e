// SPDX-License-Identifier: MIT

// Package preprocess conditions raw sequences before DTW: IQR outlier
// removal, length alignment and pooled z-score normalization, plus the
// Pipeline that applies them in the order every workflow relies on:
//
//	[sort by time] → outlier filter → (global stats) → align → (pairwise stats) → DTW
//
// Ordering matters. Filtering changes lengths, alignment truncates to the
// shorter survivor, and the normalization pool decides which samples set the
// scale. Two pooling policies are kept apart on purpose (see config.Pooling):
// pairwise statistics make a two-entity comparison locally fair, global
// statistics give every pair of a batch the same basis.
//
// Univariate comparisons are compared on raw values unless
// config.Config.NormalizeUnivariate is set; multivariate ones are always
// normalized. A feature with zero variance is left unscaled and reported,
// never treated as an error.
package preprocess
