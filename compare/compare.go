// SPDX-License-Identifier: MIT
// Package: compare
//
// compare.go - the Two, Batch and Columns workflows.
//
// Contract:
//   • Every workflow builds one preprocess.Pipeline from the Config and
//     shares its logger with the pairwise run.
//   • Entities that fail before pairing (unknown column, everything filtered
//     out, unusable normalization pool) stay in the matrix as labels; their
//     pairs are recorded as failures and their ranking score is NaN.

package compare

import (
	"context"
	"fmt"

	"github.com/katalvlaran/seqsim/config"
	"github.com/katalvlaran/seqsim/dtw"
	"github.com/katalvlaran/seqsim/pairwise"
	"github.com/katalvlaran/seqsim/preprocess"
	"github.com/katalvlaran/seqsim/ranking"
	"github.com/katalvlaran/seqsim/sequence"
)

// Entity is one named input of a workflow.
type Entity struct {
	Name  string
	Table sequence.Table
	// Columns overrides Config.SelectedColumns for this entity.
	Columns []string
}

func (e Entity) columns(cfg config.Config) []string {
	if len(e.Columns) > 0 {
		return e.Columns
	}

	return cfg.SelectedColumns
}

func (e Entity) sequence(cfg config.Config) (sequence.Sequence, error) {
	return e.Table.Select(e.columns(cfg))
}

// PairReport is the outcome of Two.
type PairReport struct {
	A, B          string
	Distance      float64
	TraceA        preprocess.Trace // rows before/after outlier filtering
	TraceB        preprocess.Trace
	AlignedLength int
	Normalized    bool
}

// Report is the outcome of Batch and Columns.
type Report struct {
	Result *pairwise.Result
	// Ranking is sorted by mean distance, most dissimilar first.
	Ranking      []ranking.Entry
	Traces       map[string]preprocess.Trace
	EntityErrors map[string]error
}

// BatchConfig is the reference configuration of the batch workflow:
// defaults with statistics pooled over the whole collection.
func BatchConfig() config.Config {
	return config.Default().WithPooling(config.PoolGlobal)
}

// Two compares entities a and b.
// Stage 1 (Validate): column selection of equal width on both sides.
// Stage 2 (Prepare): sort, filter, global statistics when configured.
// Stage 3 (Execute): align, pairwise statistics when configured, DTW.
// Errors: ErrColumnCount, sequence column errors, preprocess errors, dtw errors.
func Two(ctx context.Context, a, b Entity, cfg config.Config, opts ...Option) (*PairReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	p, err := preprocess.NewPipeline(cfg, preprocess.WithLogger(o.log))
	if err != nil {
		return nil, compareErrorf("Two", err)
	}

	if len(a.columns(cfg)) != len(b.columns(cfg)) {
		return nil, compareErrorf("Two", ErrColumnCount)
	}
	set := sequence.NewSet()
	for _, e := range []Entity{a, b} {
		seq, err := e.sequence(cfg)
		if err != nil {
			return nil, compareErrorf("Two", fmt.Errorf("%s: %w", e.Name, err))
		}
		if err = set.Add(e.Name, seq); err != nil {
			return nil, compareErrorf("Two", err)
		}
	}

	prepared, traces, failed := p.PrepareSet(set)
	for _, name := range set.Names() {
		if err := failed[name]; err != nil {
			return nil, compareErrorf("Two", fmt.Errorf("%s: %w", name, err))
		}
	}
	x, _ := prepared.Get(a.Name)
	y, _ := prepared.Get(b.Name)
	x, y, err = p.PreparePair(x, y)
	if err != nil {
		return nil, compareErrorf("Two", err)
	}

	dopts := dtw.Options{MemoryMode: dtw.TwoRows}
	if o.dtw != nil {
		dopts = *o.dtw
		dopts.ReturnPath = false
	}
	d, _, err := dtw.Distance(x, y, &dopts)
	if err != nil {
		return nil, compareErrorf("Two", err)
	}

	rep := &PairReport{
		A:             a.Name,
		B:             b.Name,
		Distance:      d,
		TraceA:        traces[a.Name],
		TraceB:        traces[b.Name],
		AlignedLength: x.Len(),
		Normalized:    p.Normalized(x.Dim()),
	}
	o.log.Info("pair compared", "a", a.Name, "b", b.Name, "distance", d, "length", rep.AlignedLength)

	return rep, nil
}

// Batch compares every pair of entities and ranks them.
// Stage 1 (Validate): at least two entities.
// Stage 2 (Prepare): column selection and PrepareSet; failures are kept per entity.
// Stage 3 (Execute): pairwise.Run with the pipeline as Preparer.
// Stage 4 (Finalize): ranking, most dissimilar first.
// Errors: ErrTooFewEntities, sequence.ErrDuplicateName, config errors,
// ctx.Err() together with the partial Report.
func Batch(ctx context.Context, entities []Entity, cfg config.Config, opts ...Option) (*Report, error) {
	if len(entities) < 2 {
		return nil, compareErrorf("Batch", ErrTooFewEntities)
	}
	o := newOptions(opts...)
	p, err := preprocess.NewPipeline(cfg, preprocess.WithLogger(o.log))
	if err != nil {
		return nil, compareErrorf("Batch", err)
	}

	raw := sequence.NewSet()
	failed := make(map[string]error)
	seen := make(map[string]bool, len(entities))
	for _, e := range entities {
		if seen[e.Name] {
			return nil, compareErrorf("Batch("+e.Name+")", sequence.ErrDuplicateName)
		}
		seen[e.Name] = true

		seq, err := e.sequence(cfg)
		if err != nil {
			o.log.Warn("entity excluded", "entity", e.Name, "err", err)
			failed[e.Name] = err
			continue
		}
		if err = raw.Add(e.Name, seq); err != nil {
			return nil, compareErrorf("Batch", err)
		}
	}

	prepared, traces, prepFailed := p.PrepareSet(raw)
	for name, err := range prepFailed {
		failed[name] = err
	}

	full := sequence.NewSet()
	for _, e := range entities {
		seq, ok := prepared.Get(e.Name)
		if !ok {
			seq = sequence.Empty(len(e.columns(cfg)))
		}
		_ = full.Add(e.Name, seq) // names checked above
	}

	return finish(ctx, "Batch", full, p, traces, failed, o)
}

// Columns compares the selected columns of one table with each other. Each
// column is filtered on its own and compared as a univariate entity under
// pairwise pooling.
// Errors: ErrTooFewEntities, sequence.ErrDuplicateName, config errors,
// ctx.Err() together with the partial Report.
func Columns(ctx context.Context, table sequence.Table, cfg config.Config, opts ...Option) (*Report, error) {
	cols := cfg.SelectedColumns
	if len(cols) < 2 {
		return nil, compareErrorf("Columns", ErrTooFewEntities)
	}
	o := newOptions(opts...)
	p, err := preprocess.NewPipeline(cfg.WithPooling(config.PoolPairwise), preprocess.WithLogger(o.log))
	if err != nil {
		return nil, compareErrorf("Columns", err)
	}

	full := sequence.NewSet()
	traces := make(map[string]preprocess.Trace, len(cols))
	failed := make(map[string]error)
	for _, c := range cols {
		seq, err := table.Select([]string{c})
		if err == nil {
			var tr preprocess.Trace
			seq, tr, err = p.PrepareColumn(seq, 0)
			traces[c] = tr
		}
		if err != nil {
			o.log.Warn("column excluded", "entity", c, "err", err)
			failed[c] = err
			seq = sequence.Empty(1)
		}
		if err = full.Add(c, seq); err != nil {
			return nil, compareErrorf("Columns", err)
		}
	}

	return finish(ctx, "Columns", full, p, traces, failed, o)
}

// finish runs the pairwise stage and ranks the result.
func finish(
	ctx context.Context,
	op string,
	set *sequence.Set,
	p *preprocess.Pipeline,
	traces map[string]preprocess.Trace,
	failed map[string]error,
	o options,
) (*Report, error) {
	runOpts := append(o.runOptions(), pairwise.WithPreparer(p), pairwise.WithEntityErrors(failed))
	res, err := pairwise.Run(ctx, set, runOpts...)
	if res == nil {
		return nil, compareErrorf(op, err)
	}

	rep := &Report{
		Result:       res,
		Ranking:      ranking.Sort(ranking.Rank(res.Matrix), ranking.Descending),
		Traces:       traces,
		EntityErrors: failed,
	}
	if top, ok := ranking.MostDissimilar(rep.Ranking); ok {
		o.log.Info("most dissimilar entity", "run", res.RunID.String(), "entity", top.Entity, "mean", top.Mean)
	}

	return rep, err
}
