// Package infostat computes Shannon entropy of discrete probability
// distributions and fits single-variable least-squares regression lines.
//
// The package provides convenient top-level wrappers around the entropy and
// regression packages, simplifying the most common use cases. For advanced
// usage and fine-grained control, use those packages directly.
//
// # Core Features
//
//   - Shannon entropy (bits) with strict open-interval probability checks
//   - Ordinary least-squares fit with MAE, MSE, RMSE, SSR, SST and two R² variants
//   - Optional non-linear candidate models ranked by R²
//   - Byte-stream entropy with compression-ratio comparison (zstd, s2, lz4)
//
// # Basic Usage
//
// Entropy of a distribution:
//
//	h, err := infostat.Entropy([]float64{0.5, 0.25, 0.25})
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidProbability) for values outside (0, 1)
//	}
//	fmt.Printf("%.2f bits\n", h) // 1.50 bits
//
// Regression of targets on predictions:
//
//	result, err := infostat.Regress(
//	    []float64{1, 2, 3, 4},
//	    []float64{2, 3, 5, 4},
//	)
//	if err != nil {
//	    // errors.Is(err, errs.ErrDegenerateInput) when a denominator is zero
//	}
//	fmt.Println(result.Line.Formula())
package infostat

import (
	"github.com/arloliu/infostat/compress"
	"github.com/arloliu/infostat/entropy"
	"github.com/arloliu/infostat/internal/hash"
	"github.com/arloliu/infostat/regression"
)

// Entropy returns the Shannon entropy in bits of the given probabilities.
//
// Every probability must lie strictly between 0 and 1. The sum is not
// checked; use entropy.IsNormalized when that matters.
func Entropy(probabilities []float64) (float64, error) {
	return entropy.Calculate(probabilities)
}

// Fit returns the least-squares line of targets on predictions.
func Fit(predictions, targets []float64) (regression.Line, error) {
	return regression.Fit(predictions, targets)
}

// Regress fits the least-squares line and computes its metrics and the
// descriptive summaries of both series.
//
// Parameters:
//   - predictions: the independent variable X
//   - targets: the dependent variable Y, same length as predictions
//   - opts: optional analyze options
//
// Returns:
//   - *regression.Result: line, metrics, summaries and ranked models
//   - error: errs.ErrLengthMismatch, errs.ErrEmptyInput or a *regression.DegenerateInputError
//
// Example:
//
//	result, err := infostat.Regress(x, y, regression.WithCandidateModels(true))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.BestFit.Formula)
func Regress(predictions, targets []float64, opts ...regression.AnalyzeOption) (*regression.Result, error) {
	return regression.Analyze(predictions, targets, opts...)
}

// Randomness reports the byte entropy of data together with its compressed
// size under each algorithm, compress.DefaultAlgorithms when none is given.
func Randomness(data []byte, algorithms ...compress.Algorithm) (*entropy.ByteReport, error) {
	return entropy.AnalyzeBytes(data, algorithms...)
}

// SampleID returns a 64-bit fingerprint of one or more numeric series.
//
// Equal series always produce equal IDs, which makes the value useful to
// correlate log lines that refer to the same input.
func SampleID(series ...[]float64) uint64 {
	return hash.Sample(series...)
}
