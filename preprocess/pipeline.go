// SPDX-License-Identifier: MIT
// Package: preprocess
//
// pipeline.go - ordered application of the stages for one workflow run.
//
// Contract:
//   • Entity stage (Prepare / PrepareColumn / PrepareSet): sort by time, IQR
//     filter, and, under global pooling, one set of statistics per
//     dimensionality group computed before any pair is compared.
//   • Pair stage (PreparePair): schema check, align, and, under pairwise
//     pooling, statistics from the two aligned sequences.
//   • The Pipeline holds only its Config and logger; it is safe to reuse.

package preprocess

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/seqsim/config"
	"github.com/katalvlaran/seqsim/sequence"
)

// Trace records what the entity stage did to one sequence.
type Trace struct {
	Rows int // rows before filtering
	Kept int // rows after filtering
}

// Removed returns the number of rows dropped as outliers.
func (t Trace) Removed() int { return t.Rows - t.Kept }

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger routes ZeroVariance notices and stage diagnostics to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("preprocess: WithLogger(nil)")
	}
	return func(p *Pipeline) {
		p.log = l
	}
}

// Pipeline applies the preprocessing stages under one Config.
type Pipeline struct {
	cfg config.Config
	log *slog.Logger
}

// NewPipeline validates cfg and returns a Pipeline.
func NewPipeline(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, preprocessErrorf("NewPipeline", err)
	}
	p := &Pipeline{
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(p)
	}

	return p, nil
}

// Config returns the configuration the Pipeline runs with.
func (p *Pipeline) Config() config.Config { return p.cfg }

// Prepare sorts seq by time (when configured) and applies the multi-column
// IQR filter.
// Errors: ErrAllRowsRemoved.
func (p *Pipeline) Prepare(seq sequence.Sequence) (sequence.Sequence, Trace, error) {
	seq = p.sort(seq)
	out, mask, err := FilterIQR(seq, p.cfg.IQRMultiplier)
	tr := Trace{Rows: seq.Len(), Kept: mask.Kept()}

	return out, tr, err
}

// PrepareColumn is Prepare with the single-column filter on feature f.
// Errors: ErrFeatureOutOfRange, ErrAllRowsRemoved.
func (p *Pipeline) PrepareColumn(seq sequence.Sequence, f int) (sequence.Sequence, Trace, error) {
	seq = p.sort(seq)
	out, mask, err := FilterIQRColumn(seq, f, p.cfg.IQRMultiplier)
	tr := Trace{Rows: seq.Len(), Kept: mask.Kept()}

	return out, tr, err
}

// PrepareSet runs Prepare on every entity of set. Entities that fail are
// left out of the returned set and reported in the error map. Under global
// pooling the survivors are then normalized with statistics shared by all
// entities of the same dimensionality.
func (p *Pipeline) PrepareSet(set *sequence.Set) (*sequence.Set, map[string]Trace, map[string]error) {
	filtered := sequence.NewSet()
	traces := make(map[string]Trace, set.Len())
	failed := make(map[string]error)

	for _, name := range set.Names() {
		seq, _ := set.Get(name)
		out, tr, err := p.Prepare(seq)
		traces[name] = tr
		if err != nil {
			p.log.Warn("entity excluded", "entity", name, "rows", tr.Rows, "err", err)
			failed[name] = err
			continue
		}
		_ = filtered.Add(name, out) // names are unique in set
	}

	if p.cfg.Pooling != config.PoolGlobal {
		return filtered, traces, failed
	}

	return p.normalizeGlobal(filtered, failed), traces, failed
}

// normalizeGlobal z-scores every dimensionality group of set with one pool
// per group. Univariate groups are skipped unless configured otherwise.
func (p *Pipeline) normalizeGlobal(set *sequence.Set, failed map[string]error) *sequence.Set {
	groups := set.GroupByDim()
	stats := make(map[int]Stats, len(groups))
	for _, d := range set.Dims() {
		if !p.cfg.Normalizes(d) {
			continue
		}
		names := groups[d]
		pool := make([]sequence.Sequence, len(names))
		for i, n := range names {
			pool[i], _ = set.Get(n)
		}
		st, err := ComputeStats(pool...)
		if err != nil {
			for _, n := range names {
				failed[n] = err
			}
			p.log.Warn("global normalization failed", "dim", d, "err", err)
			continue
		}
		p.noticeZeroVariance(st)
		stats[d] = st
	}

	out := sequence.NewSet()
	for _, n := range set.Names() {
		if _, bad := failed[n]; bad {
			continue
		}
		seq, _ := set.Get(n)
		if st, ok := stats[seq.Dim()]; ok {
			seq, _ = st.Apply(seq) // dims match by construction
		}
		_ = out.Add(n, seq)
	}

	return out
}

// PreparePair aligns a and b and, under pairwise pooling, normalizes them
// with statistics of the aligned pair.
// Stage 1 (Validate): same dimensionality.
// Stage 2 (Execute): AlignLengths.
// Stage 3 (Execute): pairwise z-score when the policy asks for it.
// Errors: ErrDimensionMismatch, ErrEmptyAlignment, ErrMissingInPool.
func (p *Pipeline) PreparePair(a, b sequence.Sequence) (sequence.Sequence, sequence.Sequence, error) {
	if a.Dim() != b.Dim() {
		return sequence.Sequence{}, sequence.Sequence{}, preprocessErrorf("PreparePair", ErrDimensionMismatch)
	}
	a, b, err := AlignLengths(a, b)
	if err != nil {
		return sequence.Sequence{}, sequence.Sequence{}, preprocessErrorf("PreparePair", err)
	}
	if p.cfg.Pooling != config.PoolPairwise || !p.cfg.Normalizes(a.Dim()) {
		return a, b, nil
	}

	out, st, err := Normalize(a, b)
	if err != nil {
		return sequence.Sequence{}, sequence.Sequence{}, preprocessErrorf("PreparePair", err)
	}
	p.noticeZeroVariance(st)

	return out[0], out[1], nil
}

// Normalized reports whether a comparison of dim features is z-scored under
// the Pipeline's configuration.
func (p *Pipeline) Normalized(dim int) bool { return p.cfg.Normalizes(dim) }

func (p *Pipeline) sort(seq sequence.Sequence) sequence.Sequence {
	if p.cfg.SortByTime {
		return seq.SortByTime()
	}

	return seq
}

// noticeZeroVariance emits one non-fatal ZeroVariance notice per feature.
func (p *Pipeline) noticeZeroVariance(st Stats) {
	for _, f := range st.ZeroVariance {
		p.log.Warn("zero variance feature, scaling skipped", "feature", f, "mean", st.Mean[f])
	}
}
