// Package compress provides the compression codecs used to judge how much
// redundancy a byte sequence carries.
//
// Compression ratio is a practical companion to Shannon entropy: text with a
// skewed symbol distribution compresses well, while random or encrypted data
// barely shrinks. The entropy package reports both side by side.
//
// # Supported Algorithms
//
//   - None: pass-through, used as a baseline
//   - Zstd: best ratio, moderate speed (pure Go by default, cgo with the gozstd build tag)
//   - S2: balanced speed and ratio
//   - LZ4: fastest, moderate ratio
//
// # Usage
//
//	stats, err := compress.Measure(compress.AlgorithmZstd, data)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %.2fx smaller\n", stats.Algorithm, stats.ReductionFactor())
//
// Codecs can also be used directly:
//
//	codec, _ := compress.CreateCodec(compress.AlgorithmS2)
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
package compress
