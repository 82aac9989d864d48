// SPDX-License-Identifier: MIT
package polygraph_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/polygraph"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := polygraph.NewConfig()

	assert.Equal(t, 0, cfg.MaxPower())
	assert.False(t, cfg.Sparse())
	assert.False(t, cfg.Exact())
	assert.Equal(t, 10, cfg.EigenDecimals())
	assert.Equal(t, polygraph.DefaultSafePower, cfg.SafePower())
	assert.Equal(t, 1e-10, cfg.Epsilon())
	assert.Equal(t, 1e-10, cfg.LPTolerance())
	assert.Equal(t, 12, cfg.DiagnosticsMaxClasses())
	assert.Equal(t, "warn", cfg.LogLevel())
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polygraph.yaml")
	body := "walk:\n  max_power: 6\n  exact: true\nlp:\n  epsilon: 1e-8\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg := polygraph.NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))
	assert.Equal(t, 6, cfg.MaxPower())
	assert.True(t, cfg.Exact())
	assert.Equal(t, 1e-8, cfg.Epsilon())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, 1e-10, cfg.LPTolerance(), "unset keys keep defaults")

	assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestConfig_Environment(t *testing.T) {
	t.Setenv("POLYGRAPH_WALK_SPARSE", "true")
	t.Setenv("POLYGRAPH_WALK_MAX_POWER", "9")

	cfg := polygraph.NewConfig()
	assert.True(t, cfg.Sparse())
	assert.Equal(t, 9, cfg.MaxPower())

	cfg.Set("walk.max_power", 4)
	assert.Equal(t, 4, cfg.MaxPower(), "explicit set overrides env")
}

func TestConfig_CreateLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	cfg := polygraph.NewConfig()

	logger := cfg.CreateLoggerTo(&buf)
	logger.Info().Msg("hidden at warn level")
	logger.Warn().Msg("shown at warn level")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown at warn level")

	buf.Reset()
	cfg.Set("logging.level", "not-a-level")
	logger = cfg.CreateLoggerTo(&buf)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String(), "unknown levels fall back to warn")
}
