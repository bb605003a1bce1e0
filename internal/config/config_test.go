package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/infostat/compress"
	"github.com/arloliu/infostat/errs"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 2, cfg.Entropy.Precision)
	require.Equal(t, 3, cfg.Regression.Precision)
	require.Equal(t, 1, cfg.Regression.MinPoints)
	require.Empty(t, cfg.Plot.Output)

	algs, err := cfg.Entropy.Codecs()
	require.NoError(t, err)
	require.Equal(t, compress.DefaultAlgorithms(), algs)
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("partial document keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "infostat.yaml")
		doc := []byte(`
log:
  level: debug
regression:
  precision: 5
  candidates: true
plot:
  output: fit.png
`)
		require.NoError(t, os.WriteFile(path, doc, 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "text", cfg.Log.Format)
		require.Equal(t, 5, cfg.Regression.Precision)
		require.True(t, cfg.Regression.Candidates)
		require.Equal(t, 1, cfg.Regression.MinPoints)
		require.Equal(t, "fit.png", cfg.Plot.Output)
		require.InDelta(t, 16.0, cfg.Plot.Width, 0)
		require.Equal(t, 2, cfg.Entropy.Precision)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{"malformed yaml", "log: [", "failed to parse config"},
		{"bad level", "log: {level: loud}", "log.level"},
		{"bad format", "log: {format: xml}", "log.format must be text or json"},
		{"negative precision", "entropy: {precision: -1}", "entropy.precision cannot be negative"},
		{"min points", "regression: {min_points: 0}", "regression.min_points must be at least 1"},
		{"plot size", "plot: {width: 0}", "plot size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := Parse([]byte("entropy: {algorithms: [zstd, brotli]}"))
	require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
}

func TestParse_ReportsAllProblems(t *testing.T) {
	_, err := Parse([]byte("log: {format: xml}\nregression: {precision: -2}"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.format")
	require.Contains(t, err.Error(), "regression.precision")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger, err = LogConfig{Level: "DEBUG", Format: "text"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("trace")
	require.Contains(t, buf.String(), "msg=trace")

	_, err = LogConfig{Level: "verbose"}.NewLogger(&buf)
	require.Error(t, err)
}
