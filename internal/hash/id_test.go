package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("regression"), ID("regression"))
	require.NotEqual(t, ID("a"), ID("b"))
}

func TestSample(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		x := []float64{1, 2, 3}
		y := []float64{2, 4, 6}
		require.Equal(t, Sample(x, y), Sample(x, y))
	})

	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Sample([]float64{1, 2}), Sample([]float64{2, 1}))
	})

	t.Run("series boundaries matter", func(t *testing.T) {
		a := Sample([]float64{1, 2}, []float64{3})
		b := Sample([]float64{1}, []float64{2, 3})
		require.NotEqual(t, a, b)
	})

	t.Run("empty series", func(t *testing.T) {
		require.NotEqual(t, Sample(), Sample([]float64{}))
	})
}
