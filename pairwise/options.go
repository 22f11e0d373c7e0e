// SPDX-License-Identifier: MIT
// Package: pairwise
//
// options.go - functional options for Run.
//
// Option constructors panic on nil arguments; Run itself never panics.

package pairwise

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/seqsim/dtw"
	"github.com/katalvlaran/seqsim/sequence"
)

// Preparer turns two entity sequences into the pair that DTW compares.
// *preprocess.Pipeline satisfies it.
type Preparer interface {
	PreparePair(a, b sequence.Sequence) (sequence.Sequence, sequence.Sequence, error)
}

// Option customizes a Run.
type Option func(*runConfig)

type runConfig struct {
	prep     Preparer
	failed   map[string]error
	dtw      dtw.Options
	log      *slog.Logger
	progress func(Progress)
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		dtw: dtw.Options{MemoryMode: dtw.TwoRows},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithPreparer applies p to every pair before DTW.
// Without it sequences are compared as stored.
func WithPreparer(p Preparer) Option {
	if p == nil {
		panic("pairwise: WithPreparer(nil)")
	}
	return func(c *runConfig) {
		c.prep = p
	}
}

// WithEntityErrors marks entities that failed upstream. Every pair involving
// one of them fails with the kind of its error and is not computed.
func WithEntityErrors(failed map[string]error) Option {
	return func(c *runConfig) {
		c.failed = failed
	}
}

// WithDTWOptions sets the DTW storage mode. Paths are never recovered.
func WithDTWOptions(o dtw.Options) Option {
	return func(c *runConfig) {
		o.ReturnPath = false
		c.dtw = o
	}
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pairwise: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.log = l
	}
}

// WithProgress calls fn after every visited pair. Panics on nil.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic("pairwise: WithProgress(nil)")
	}
	return func(c *runConfig) {
		c.progress = fn
	}
}
