// SPDX-License-Identifier: MIT

package compare_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqsim/builder"
	"github.com/katalvlaran/seqsim/compare"
	"github.com/katalvlaran/seqsim/config"
	"github.com/katalvlaran/seqsim/pairwise"
	"github.com/katalvlaran/seqsim/sequence"
)

// table wraps univariate fixtures as named columns of one table.
func table(cols map[string]sequence.Sequence) sequence.Table {
	t := sequence.Table{Columns: make(map[string][]float64, len(cols))}
	for name, s := range cols {
		t.Columns[name] = s.Column(0)
	}

	return t
}

func mustSeq(t *testing.T) func(sequence.Sequence, error) sequence.Sequence {
	return func(s sequence.Sequence, err error) sequence.Sequence {
		t.Helper()
		require.NoError(t, err)
		return s
	}
}

// TestTwo_IdenticalIsZero: identical length-100 univariate inputs.
func TestTwo_IdenticalIsZero(t *testing.T) {
	s := mustSeq(t)(builder.Sine(100, 1))
	cfg := config.Default().WithColumns("v")
	a := compare.Entity{Name: "a", Table: table(map[string]sequence.Sequence{"v": s})}
	b := compare.Entity{Name: "b", Table: table(map[string]sequence.Sequence{"v": s})}

	rep, err := compare.Two(context.Background(), a, b, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Distance)
	assert.Equal(t, 100, rep.AlignedLength)
	assert.Equal(t, 100, rep.TraceA.Rows)
	assert.Equal(t, 0, rep.TraceA.Removed())
	assert.False(t, rep.Normalized)
}

func TestTwo_Multivariate(t *testing.T) {
	x := mustSeq(t)(builder.Sine(60, 1))
	y := mustSeq(t)(builder.Pulse(60, 1, builder.WithTriangular()))
	cfg := config.Default().WithColumns("x", "y")
	a := compare.Entity{Name: "a", Table: table(map[string]sequence.Sequence{"x": x, "y": y})}
	b := compare.Entity{Name: "b", Table: table(map[string]sequence.Sequence{
		"x": builder.Shift(x, 0.2),
		"y": y,
	})}

	rep, err := compare.Two(context.Background(), a, b, cfg)
	require.NoError(t, err)
	assert.True(t, rep.Normalized)
	assert.Greater(t, rep.Distance, 0.0)

	global, err := compare.Two(context.Background(), a, b, cfg.WithPooling(config.PoolGlobal))
	require.NoError(t, err)
	assert.Greater(t, global.Distance, 0.0)
}

func TestTwo_Errors(t *testing.T) {
	s := mustSeq(t)(builder.Sine(10, 1))
	tb := table(map[string]sequence.Sequence{"v": s, "w": s})
	cfg := config.Default().WithColumns("v")

	_, err := compare.Two(context.Background(),
		compare.Entity{Name: "a", Table: tb},
		compare.Entity{Name: "b", Table: tb, Columns: []string{"v", "w"}},
		cfg)
	assert.ErrorIs(t, err, compare.ErrColumnCount)
	assert.ErrorIs(t, err, sequence.ErrSchemaMismatch)

	_, err = compare.Two(context.Background(),
		compare.Entity{Name: "a", Table: tb},
		compare.Entity{Name: "b", Table: tb, Columns: []string{"nope"}},
		cfg)
	assert.ErrorIs(t, err, sequence.ErrUnknownColumn)

	nan := sequence.Table{Columns: map[string][]float64{"v": {math.NaN(), math.NaN()}}}
	_, err = compare.Two(context.Background(),
		compare.Entity{Name: "a", Table: tb},
		compare.Entity{Name: "b", Table: nan},
		cfg)
	assert.ErrorIs(t, err, sequence.ErrInsufficientData)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compare.Two(ctx, compare.Entity{Name: "a", Table: tb}, compare.Entity{Name: "b", Table: tb}, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBatch_TranslationVersusNoise: B is A shifted, C is unrelated noise;
// C must have the highest mean distance.
func TestBatch_TranslationVersusNoise(t *testing.T) {
	a := mustSeq(t)(builder.Sine(100, 1))
	b := builder.Shift(a, 0.5)
	c := mustSeq(t)(builder.Noise(100, 42, builder.WithAmplitude(3)))

	entities := []compare.Entity{
		{Name: "A", Table: table(map[string]sequence.Sequence{"v": a})},
		{Name: "B", Table: table(map[string]sequence.Sequence{"v": b})},
		{Name: "C", Table: table(map[string]sequence.Sequence{"v": c})},
	}
	rep, err := compare.Batch(context.Background(), entities, config.Default().WithColumns("v"))
	require.NoError(t, err)
	require.Empty(t, rep.Result.Failures)
	require.Len(t, rep.Ranking, 3)
	assert.Equal(t, "C", rep.Ranking[0].Entity)
	assert.Greater(t, rep.Ranking[0].Mean, rep.Ranking[1].Mean)
}

func TestBatch_TranslationVersusNoiseMultivariate(t *testing.T) {
	x := mustSeq(t)(builder.Sine(100, 1))
	y := mustSeq(t)(builder.Pulse(100, 1, builder.WithTriangular()))
	n1 := mustSeq(t)(builder.Noise(100, 7, builder.WithAmplitude(3)))
	n2 := mustSeq(t)(builder.Noise(100, 8, builder.WithAmplitude(3)))

	mk := func(name string, f0, f1 sequence.Sequence) compare.Entity {
		return compare.Entity{Name: name, Table: table(map[string]sequence.Sequence{"f0": f0, "f1": f1})}
	}
	entities := []compare.Entity{
		mk("A", x, y),
		mk("B", builder.Shift(x, 0.5), builder.Shift(y, 0.5)),
		mk("C", n1, n2),
	}
	rep, err := compare.Batch(context.Background(), entities, compare.BatchConfig().WithColumns("f0", "f1"))
	require.NoError(t, err)
	assert.Equal(t, "C", rep.Ranking[0].Entity)
}

// TestBatch_EmptiedEntity: an all-NaN entity is emptied by the filter; its
// pairs fail with InsufficientData while the rest succeed.
func TestBatch_EmptiedEntity(t *testing.T) {
	a := mustSeq(t)(builder.Sine(50, 1))
	b := mustSeq(t)(builder.Sine(50, 2, builder.WithNoise(0.1)))
	empty := sequence.Table{Columns: map[string][]float64{"v": {math.NaN(), math.NaN(), math.NaN()}}}

	entities := []compare.Entity{
		{Name: "a", Table: table(map[string]sequence.Sequence{"v": a})},
		{Name: "empty", Table: empty},
		{Name: "b", Table: table(map[string]sequence.Sequence{"v": b})},
	}
	rep, err := compare.Batch(context.Background(), entities, config.Default().WithColumns("v"))
	require.NoError(t, err)

	res := rep.Result
	assert.Equal(t, []string{"a", "empty", "b"}, res.Matrix.Labels())
	require.Len(t, res.Pairs, 1)
	fails := res.FailuresOf("empty")
	require.Len(t, fails, 2)
	for _, f := range fails {
		assert.Equal(t, pairwise.InsufficientData, f.Kind)
	}
	assert.ErrorIs(t, rep.EntityErrors["empty"], sequence.ErrInsufficientData)

	last := rep.Ranking[len(rep.Ranking)-1]
	assert.Equal(t, "empty", last.Entity)
	assert.True(t, math.IsNaN(last.Mean))
	assert.Equal(t, 3, rep.Traces["empty"].Removed())
}

func TestBatch_Errors(t *testing.T) {
	s := mustSeq(t)(builder.Sine(10, 1))
	tb := table(map[string]sequence.Sequence{"v": s})
	cfg := config.Default().WithColumns("v")

	_, err := compare.Batch(context.Background(), []compare.Entity{{Name: "a", Table: tb}}, cfg)
	assert.ErrorIs(t, err, compare.ErrTooFewEntities)

	_, err = compare.Batch(context.Background(), []compare.Entity{{Name: "a", Table: tb}, {Name: "a", Table: tb}}, cfg)
	assert.ErrorIs(t, err, sequence.ErrDuplicateName)

	bad := cfg
	bad.IQRMultiplier = math.NaN()
	_, err = compare.Batch(context.Background(), []compare.Entity{{Name: "a", Table: tb}, {Name: "b", Table: tb}}, bad)
	assert.ErrorIs(t, err, config.ErrInvalidMultiplier)

	rep, err := compare.Batch(context.Background(), []compare.Entity{
		{Name: "a", Table: tb},
		{Name: "b", Table: tb},
		{Name: "c", Table: tb, Columns: []string{"missing"}},
	}, cfg)
	require.NoError(t, err)
	assert.ErrorIs(t, rep.EntityErrors["c"], sequence.ErrUnknownColumn)
	assert.Len(t, rep.Result.Pairs, 1)
}

func TestBatch_CancelledReturnsPartial(t *testing.T) {
	s := mustSeq(t)(builder.Sine(10, 1))
	tb := table(map[string]sequence.Sequence{"v": s})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := compare.Batch(ctx, []compare.Entity{{Name: "a", Table: tb}, {Name: "b", Table: tb}},
		config.Default().WithColumns("v"))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Empty(t, rep.Result.Pairs)
}

func TestColumns(t *testing.T) {
	x := mustSeq(t)(builder.Sine(80, 1))
	tb := table(map[string]sequence.Sequence{
		"x":     x,
		"x_up":  builder.Shift(x, 0.1),
		"noise": mustSeq(t)(builder.Noise(80, 5, builder.WithAmplitude(3))),
	})

	var calls int
	rep, err := compare.Columns(context.Background(), tb,
		compare.BatchConfig().WithColumns("x", "x_up", "noise"),
		compare.WithProgress(func(pairwise.Progress) { calls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"x", "x_up", "noise"}, rep.Result.Matrix.Labels())
	assert.Equal(t, "noise", rep.Ranking[0].Entity)

	_, err = compare.Columns(context.Background(), tb, config.Default().WithColumns("x"))
	assert.ErrorIs(t, err, compare.ErrTooFewEntities)
}
