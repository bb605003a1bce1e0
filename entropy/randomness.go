package entropy

import (
	"fmt"

	"github.com/arloliu/infostat/compress"
	"github.com/arloliu/infostat/errs"
)

// ByteReport pairs the byte entropy of a buffer with how well it compresses.
type ByteReport struct {
	// Length is the number of bytes analyzed.
	Length int
	// Symbols is the number of distinct byte values.
	Symbols int
	// Entropy is the Shannon entropy in bits per byte.
	Entropy float64
	// MaxEntropy is log2(Symbols), the ceiling for this alphabet size.
	MaxEntropy float64
	// Compression holds one entry per requested algorithm, in request order.
	Compression []compress.CompressionStats
}

// Efficiency returns Entropy / MaxEntropy, or 0 when fewer than two symbols were seen.
func (r *ByteReport) Efficiency() float64 {
	if r.MaxEntropy == 0 {
		return 0
	}

	return r.Entropy / r.MaxEntropy
}

// AnalyzeBytes estimates the entropy of data and measures its compressed size
// with each algorithm. With no algorithms given, compress.DefaultAlgorithms is used.
func AnalyzeBytes(data []byte, algorithms ...compress.Algorithm) (*ByteReport, error) {
	if len(data) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if len(algorithms) == 0 {
		algorithms = compress.DefaultAlgorithms()
	}

	est := NewEstimator()
	_, _ = est.Write(data)

	report := &ByteReport{
		Length:      est.Len(),
		Symbols:     est.Symbols(),
		Entropy:     est.Value(),
		MaxEntropy:  MaxEntropy(est.Symbols()),
		Compression: make([]compress.CompressionStats, 0, len(algorithms)),
	}

	for _, alg := range algorithms {
		stats, err := compress.Measure(alg, data)
		if err != nil {
			return nil, fmt.Errorf("failed to measure %s compression: %w", alg, err)
		}
		report.Compression = append(report.Compression, stats)
	}

	return report, nil
}
