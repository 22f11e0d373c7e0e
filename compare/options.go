// SPDX-License-Identifier: MIT
// Package: compare
//
// options.go - functional options shared by the workflows.

package compare

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/seqsim/dtw"
	"github.com/katalvlaran/seqsim/pairwise"
)

// Option customizes a workflow call.
type Option func(*options)

type options struct {
	log      *slog.Logger
	progress func(pairwise.Progress)
	dtw      *dtw.Options
}

func newOptions(opts ...Option) options {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithLogger routes diagnostics of every stage to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}
	return func(o *options) {
		o.log = l
	}
}

// WithProgress reports each visited pair of Batch and Columns. Panics on nil.
func WithProgress(fn func(pairwise.Progress)) Option {
	if fn == nil {
		panic("compare: WithProgress(nil)")
	}
	return func(o *options) {
		o.progress = fn
	}
}

// WithDTWOptions selects the DTW storage mode.
func WithDTWOptions(d dtw.Options) Option {
	return func(o *options) {
		o.dtw = &d
	}
}

// runOptions translates o into pairwise options.
func (o options) runOptions() []pairwise.Option {
	out := []pairwise.Option{pairwise.WithLogger(o.log)}
	if o.progress != nil {
		out = append(out, pairwise.WithProgress(o.progress))
	}
	if o.dtw != nil {
		out = append(out, pairwise.WithDTWOptions(*o.dtw))
	}

	return out
}
