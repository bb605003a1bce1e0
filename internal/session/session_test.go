package session

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/infostat/internal/config"
)

func newSession(t *testing.T, input string, cfg config.Config) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := New(strings.NewReader(input), &out, cfg, logger)
	require.NoError(t, err)

	return s, &out, &logs
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestRunEntropy(t *testing.T) {
	input := lines(
		"2", "0.5", "0.5", "y",
		"3", "0.5", "0.25", "0.25", "n",
	)
	s, out, logs := newSession(t, input, config.Default())

	require.NoError(t, s.RunEntropy(context.Background()))

	text := out.String()
	require.Contains(t, text, "The entropy of the event is 1.00.")
	require.Contains(t, text, "The entropy of the event is 1.50.")
	require.Equal(t, 2, strings.Count(text, entropyAgainPrompt))
	require.Equal(t, 2, strings.Count(logs.String(), "entropy computed"))
	require.NotContains(t, logs.String(), "do not sum to 1")
}

func TestRunEntropy_WarnsWhenNotNormalized(t *testing.T) {
	s, out, logs := newSession(t, lines("1", "0.5", "n"), config.Default())

	require.NoError(t, s.RunEntropy(context.Background()))
	require.Contains(t, out.String(), "The entropy of the event is 0.50.")
	require.Contains(t, logs.String(), "probabilities do not sum to 1")
	require.Contains(t, logs.String(), "level=WARN")
}

func TestRunEntropy_EOFEndsSession(t *testing.T) {
	s, out, _ := newSession(t, lines("2", "0.5"), config.Default())

	require.NoError(t, s.RunEntropy(context.Background()))
	require.Contains(t, out.String(), "Enter probability 2: ")
}

func TestRunEntropy_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, out, _ := newSession(t, lines("1", "0.5", "n"), config.Default())
	require.ErrorIs(t, s.RunEntropy(ctx), context.Canceled)
	require.Empty(t, out.String())
}

func TestRunRegression(t *testing.T) {
	input := lines(
		"1,2,3", "2,4,6", "y",
		"1,2,3,4", "2,3,5,4", "N",
	)
	s, out, logs := newSession(t, input, config.Default())

	require.NoError(t, s.RunRegression(context.Background()))

	text := out.String()
	require.Contains(t, text, "Regression line: Y = 2.000X + 0.000")
	require.Contains(t, text, "R-squared: 1.000")
	require.Contains(t, text, "Regression line: Y = 0.800X + 1.500")
	require.Contains(t, text, "Alternative R-squared: -0.200")
	require.NotContains(t, text, "SERIES")
	require.NotContains(t, text, "RANK")
	require.Equal(t, 2, strings.Count(logs.String(), "regression computed"))
}

func TestRunRegression_DegenerateInputContinues(t *testing.T) {
	input := lines(
		"5,5,5", "1,2,3",
		"1,2,3", "7,7,7",
		"1,2", "1,3", "n",
	)
	s, out, logs := newSession(t, input, config.Default())

	require.NoError(t, s.RunRegression(context.Background()))

	text := out.String()
	require.Contains(t, text, "all predicted values are identical")
	require.Contains(t, text, "all target values are identical")
	require.Contains(t, text, "Regression line: Y = 2.000X + -1.000")
	require.Equal(t, 1, strings.Count(text, regressionPrompt))
	require.Equal(t, 2, strings.Count(logs.String(), "regression rejected"))
}

func TestRunRegression_SummaryCandidatesAndPlot(t *testing.T) {
	cfg := config.Default()
	cfg.Regression.Summary = true
	cfg.Regression.Candidates = true
	cfg.Plot.Output = filepath.Join(t.TempDir(), "fit.png")

	input := lines("1,2,4,5,10,20", "7,5,4,3.8,3.4,3.2", "n")
	s, out, logs := newSession(t, input, cfg)

	require.NoError(t, s.RunRegression(context.Background()))

	text := out.String()
	require.Contains(t, text, "SERIES")
	require.Contains(t, text, "hyperbolic")
	require.Contains(t, logs.String(), "plot saved")

	info, err := os.Stat(cfg.Plot.Output)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRunRegression_PlotFailureIsNotFatal(t *testing.T) {
	cfg := config.Default()
	cfg.Plot.Output = filepath.Join(t.TempDir(), "missing", "dir", "fit.png")

	s, out, logs := newSession(t, lines("1,2,3", "2,4,6", "n"), cfg)

	require.NoError(t, s.RunRegression(context.Background()))
	require.Contains(t, out.String(), plotFailureMessage)
	require.Contains(t, logs.String(), "plot failed")
	require.Contains(t, out.String(), regressionPrompt)
}

func TestRunRegression_MinPoints(t *testing.T) {
	cfg := config.Default()
	cfg.Regression.MinPoints = 3

	s, out, _ := newSession(t, lines("1,2", "3,4", "1,2,3", "3,4,6", "n"), cfg)

	require.NoError(t, s.RunRegression(context.Background()))
	require.Contains(t, out.String(), "insufficient data points")
	require.Contains(t, out.String(), "Regression line: Y = 1.500X + 1.333")
}

func TestRunBytes(t *testing.T) {
	s, out, logs := newSession(t, lines("abababab", "y", "", "xyz", "n"), config.Default())

	require.NoError(t, s.RunBytes(context.Background()))

	text := out.String()
	require.Contains(t, text, "Bytes analyzed: 8")
	require.Contains(t, text, "Entropy: 1.00 bits/byte")
	require.Contains(t, text, "empty input")
	require.Contains(t, logs.String(), "byte entropy computed")
}

func TestNew_InvalidPrecision(t *testing.T) {
	cfg := config.Default()
	cfg.Entropy.Precision = -1

	_, err := New(strings.NewReader(""), &bytes.Buffer{}, cfg, nil)
	require.Error(t, err)
}
