package compress

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/infostat/errs"
)

// Algorithm identifies a compression algorithm.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = 0x1 // AlgorithmNone passes data through unchanged.
	AlgorithmZstd Algorithm = 0x2 // AlgorithmZstd represents Zstandard compression.
	AlgorithmS2   Algorithm = 0x3 // AlgorithmS2 represents S2 compression.
	AlgorithmLZ4  Algorithm = 0x4 // AlgorithmLZ4 represents LZ4 block compression.
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm returns the Algorithm for a case-insensitive name such as "zstd".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return AlgorithmNone, nil
	case "zstd":
		return AlgorithmZstd, nil
	case "s2":
		return AlgorithmS2, nil
	case "lz4":
		return AlgorithmLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownAlgorithm, name)
	}
}

// DefaultAlgorithms lists the algorithms used when a caller names none.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmZstd, AlgorithmS2, AlgorithmLZ4}
}

// Compressor compresses a complete buffer.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original data, or an error when data is
	// corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run over a buffer.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm Algorithm

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to restore the data
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size.
//
// Values below 1.0 mean the data compressed; values at or above 1.0 are
// typical for short or high-entropy input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// ReductionFactor returns original size / compressed size, the "how many times
// smaller" figure. Random data stays close to 1.0.
func (s CompressionStats) ReductionFactor() float64 {
	if s.CompressedSize == 0 {
		return 0.0
	}

	return float64(s.OriginalSize) / float64(s.CompressedSize)
}

// SpaceSavings returns the space savings as a percentage.
// Negative values mean the output grew.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns a new Codec for the given algorithm.
func CreateCodec(algorithm Algorithm) (Codec, error) {
	switch algorithm {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(), nil
	case AlgorithmS2:
		return NewS2Compressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownAlgorithm, algorithm)
	}
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone: NewNoOpCompressor(),
	AlgorithmZstd: NewZstdCompressor(),
	AlgorithmS2:   NewS2Compressor(),
	AlgorithmLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the algorithm.
func GetCodec(algorithm Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownAlgorithm, algorithm)
}

// Measure compresses data with the algorithm's built-in codec, decompresses
// the result and reports the sizes. A result that does not decompress back to
// data fails with errs.ErrRoundTrip, so a reported ratio always describes a
// lossless encoding.
func Measure(algorithm Algorithm, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(algorithm)
	if err != nil {
		return CompressionStats{}, err
	}

	return measure(codec, algorithm, data)
}

func measure(codec Codec, algorithm Algorithm, data []byte) (CompressionStats, error) {
	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%w: %s decompression failed: %w", errs.ErrRoundTrip, algorithm, err)
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%w: %s restored %d of %d bytes", errs.ErrRoundTrip, algorithm, len(restored), len(data))
	}

	return CompressionStats{
		Algorithm:           algorithm,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}, nil
}
