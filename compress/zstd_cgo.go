//go:build gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// zstdLevel matches the SpeedDefault level of the pure Go encoder, so both
// builds report comparable ratios for the same text.
const zstdLevel = 3

// Compress encodes data as one Zstandard frame through libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes one Zstandard frame through libzstd.
func (c ZstdCompressor) Decompress(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, nil
	}

	decoded, err := gozstd.Decompress(nil, frame)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decoded, nil
}
