package entropy

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/infostat/compress"
	"github.com/arloliu/infostat/errs"
)

func TestEstimator(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		est := NewEstimator()
		require.Zero(t, est.Value())
		require.Zero(t, est.Len())
		require.Nil(t, est.Distribution())
	})

	t.Run("single symbol", func(t *testing.T) {
		est := NewEstimator()
		_, err := est.Write([]byte("aaaa"))
		require.NoError(t, err)
		require.Zero(t, est.Value())
		require.Equal(t, 1, est.Symbols())
	})

	t.Run("two equiprobable symbols", func(t *testing.T) {
		est := NewEstimator()
		_, _ = est.Write([]byte("abab"))
		require.InDelta(t, 1.0, est.Value(), 1e-12)
		require.Equal(t, []float64{0.5, 0.5}, est.Distribution())
	})

	t.Run("all byte values", func(t *testing.T) {
		data := make([]byte, 256)
		for i := range data {
			data[i] = byte(i)
		}
		est := NewEstimator()
		_, _ = est.Write(data)
		require.InDelta(t, 8.0, est.Value(), 1e-12)
		require.Equal(t, 256, est.Symbols())
	})

	t.Run("incremental writes match single write", func(t *testing.T) {
		whole := NewEstimator()
		_, _ = whole.Write([]byte("hello, entropy"))

		parts := NewEstimator()
		_, err := io.Copy(parts, strings.NewReader("hello, entropy"))
		require.NoError(t, err)
		require.Equal(t, whole.Value(), parts.Value())
		require.Equal(t, whole.Len(), parts.Len())
	})

	t.Run("agrees with Calculate", func(t *testing.T) {
		est := NewEstimator()
		_, _ = est.Write([]byte("aab"))
		h, err := Calculate(est.Distribution())
		require.NoError(t, err)
		require.InDelta(t, h, est.Value(), 1e-12)
	})

	t.Run("reset", func(t *testing.T) {
		est := NewEstimator()
		_, _ = est.Write([]byte("xyz"))
		est.Reset()
		require.Zero(t, est.Len())
		require.Zero(t, est.Symbols())
	})
}

func TestAnalyzeBytes(t *testing.T) {
	t.Run("repetitive text", func(t *testing.T) {
		data := bytes.Repeat([]byte("to be or not to be "), 200)
		report, err := AnalyzeBytes(data)
		require.NoError(t, err)
		require.Equal(t, len(data), report.Length)
		require.Equal(t, 7, report.Symbols)
		require.Less(t, report.Entropy, report.MaxEntropy)
		require.Greater(t, report.Efficiency(), 0.0)
		require.Less(t, report.Efficiency(), 1.0)
		require.Len(t, report.Compression, len(compress.DefaultAlgorithms()))
		for _, stats := range report.Compression {
			require.Greater(t, stats.ReductionFactor(), 2.0, stats.Algorithm.String())
		}
	})

	t.Run("explicit algorithms keep order", func(t *testing.T) {
		report, err := AnalyzeBytes([]byte("abc"), compress.AlgorithmLZ4, compress.AlgorithmNone)
		require.NoError(t, err)
		require.Len(t, report.Compression, 2)
		require.Equal(t, compress.AlgorithmLZ4, report.Compression[0].Algorithm)
		require.Equal(t, compress.AlgorithmNone, report.Compression[1].Algorithm)
	})

	t.Run("single symbol has zero efficiency", func(t *testing.T) {
		report, err := AnalyzeBytes([]byte("zzzz"), compress.AlgorithmNone)
		require.NoError(t, err)
		require.Zero(t, report.Entropy)
		require.Zero(t, report.Efficiency())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := AnalyzeBytes(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := AnalyzeBytes([]byte("abc"), compress.Algorithm(0x42))
		require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
	})
}
