// SPDX-License-Identifier: MIT
// Package: pairwise
//
// run.go - the pairwise orchestrator.

package pairwise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/seqsim/dtw"
	"github.com/katalvlaran/seqsim/matrix"
	"github.com/katalvlaran/seqsim/sequence"
)

// Run compares every unordered pair of entities in set.
//
// Stage 1 (Validate): non-empty set.
// Stage 2 (Prepare): labelled matrix builder, RunID, scoped logger.
// Stage 3 (Execute): for i<j, upstream failure check, Preparer, DTW.
// Stage 4 (Finalize): freeze the matrix.
//
// Errors: ErrEmptySet; ctx.Err() together with the partial Result on
// cancellation. Per-pair errors never fail the run.
// Complexity: O(N²) pairs, each O(L_a·L_b·d).
func Run(ctx context.Context, set *sequence.Set, opts ...Option) (*Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrEmptySet
	}
	cfg := newRunConfig(opts...)

	names := set.Names()
	b, err := matrix.NewDistanceBuilder(names)
	if err != nil {
		return nil, fmt.Errorf("pairwise: Run: %w", err)
	}
	res := &Result{RunID: uuid.New()}
	log := cfg.log.With("run", res.RunID.String())

	n := len(names)
	total := n * (n - 1) / 2
	done := 0
	log.Info("pairwise run started", "entities", n, "pairs", total)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				res.Matrix = b.Build()
				log.Warn("pairwise run cancelled", "done", done, "pairs", total, "err", err)
				return res, err
			}

			a, c := names[i], names[j]
			d, length, err := cfg.compare(set, a, c)
			if err != nil {
				f := Failure{A: a, B: c, Kind: Classify(err), Err: err}
				res.Failures = append(res.Failures, f)
				log.Warn("pair failed", "a", a, "b", c, "kind", f.Kind.String(), "err", err)
			} else if err = b.Set(i, j, d); err != nil {
				// DTW of finite inputs is finite and non-negative; anything
				// else is recorded rather than stored.
				res.Failures = append(res.Failures, Failure{A: a, B: c, Kind: Unknown, Err: err})
				log.Warn("pair rejected by matrix", "a", a, "b", c, "err", err)
			} else {
				res.Pairs = append(res.Pairs, Pair{A: a, B: c, Distance: d, Length: length})
				log.Debug("pair compared", "a", a, "b", c, "distance", d, "length", length)
			}

			done++
			if cfg.progress != nil {
				cfg.progress(Progress{Done: done, Total: total, A: a, B: c})
			}
		}
	}

	res.Matrix = b.Build()
	log.Info("pairwise run finished", "pairs", len(res.Pairs), "failures", len(res.Failures))

	return res, nil
}

// compare runs one pair through the upstream check, the Preparer and DTW.
func (cfg *runConfig) compare(set *sequence.Set, a, c string) (float64, int, error) {
	if err, bad := cfg.failed[a]; bad {
		return 0, 0, fmt.Errorf("entity %s: %w", a, err)
	}
	if err, bad := cfg.failed[c]; bad {
		return 0, 0, fmt.Errorf("entity %s: %w", c, err)
	}

	x, _ := set.Get(a)
	y, _ := set.Get(c)
	if cfg.prep != nil {
		var err error
		if x, y, err = cfg.prep.PreparePair(x, y); err != nil {
			return 0, 0, err
		}
	}
	d, _, err := dtw.Distance(x, y, &cfg.dtw)
	if err != nil {
		return 0, 0, err
	}

	return d, x.Len(), nil
}
