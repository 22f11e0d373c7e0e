// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqsim/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1.5, cfg.IQRMultiplier)
	assert.Equal(t, config.PoolPairwise, cfg.Pooling)
	assert.True(t, cfg.SortByTime)
	assert.False(t, cfg.NormalizeUnivariate)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*config.Config)
		want error
	}{
		{"negative multiplier", func(c *config.Config) { c.IQRMultiplier = -1 }, config.ErrInvalidMultiplier},
		{"nan multiplier", func(c *config.Config) { c.IQRMultiplier = math.NaN() }, config.ErrInvalidMultiplier},
		{"inf multiplier", func(c *config.Config) { c.IQRMultiplier = math.Inf(1) }, config.ErrInvalidMultiplier},
		{"zero multiplier", func(c *config.Config) { c.IQRMultiplier = 0 }, nil},
		{"empty pooling", func(c *config.Config) { c.Pooling = "" }, config.ErrUnknownPooling},
		{"global pooling", func(c *config.Config) { c.Pooling = config.PoolGlobal }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
iqr_multiplier: 3
normalization_pooling: global
selected_columns: [temperature, humidity]
`))
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.IQRMultiplier)
	assert.Equal(t, config.PoolGlobal, cfg.Pooling)
	assert.Equal(t, []string{"temperature", "humidity"}, cfg.SelectedColumns)
	assert.True(t, cfg.SortByTime, "absent fields keep defaults")

	_, err = config.Parse([]byte("normalization_pooling: per-file\n"))
	assert.ErrorIs(t, err, config.ErrUnknownPooling)

	_, err = config.Parse([]byte("iqr_multiplier: -2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidMultiplier)

	_, err = config.Parse([]byte("iqr_multiplier: [1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("normalize_univariate: true\nsort_by_time: false\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.NormalizeUnivariate)
	assert.False(t, cfg.SortByTime)
	assert.Equal(t, config.DefaultIQRMultiplier, cfg.IQRMultiplier)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHelpers(t *testing.T) {
	cfg := config.Default().WithPooling(config.PoolGlobal).WithColumns("a", "b")
	assert.Equal(t, config.PoolGlobal, cfg.Pooling)
	assert.Equal(t, []string{"a", "b"}, cfg.SelectedColumns)

	assert.True(t, cfg.Normalizes(2))
	assert.False(t, cfg.Normalizes(1))
	cfg.NormalizeUnivariate = true
	assert.True(t, cfg.Normalizes(1))
}
