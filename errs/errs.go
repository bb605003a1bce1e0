// Package errs defines the sentinel errors shared by the infostat packages.
//
// Callers match error kinds with errors.Is; the engines wrap these sentinels
// in typed errors that carry the offending value.
package errs

import "errors"

var (
	// ErrParse indicates non-numeric or malformed interactive input.
	ErrParse = errors.New("malformed numeric input")
	// ErrInvalidProbability indicates a probability outside the open interval (0, 1).
	ErrInvalidProbability = errors.New("invalid probability value: probabilities must be greater than 0 and less than 1")
	// ErrLengthMismatch indicates prediction and target lists of different lengths.
	ErrLengthMismatch = errors.New("prediction and target lists must have the same length")
	// ErrDegenerateInput indicates a zero denominator in a regression quantity.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrEmptyInput indicates an empty sample or distribution.
	ErrEmptyInput = errors.New("empty input")
	// ErrInsufficientData indicates fewer points than a computation requires.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrUnknownAlgorithm indicates an unsupported compression algorithm.
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")
	// ErrRoundTrip indicates compressed data that did not decompress to the original.
	ErrRoundTrip = errors.New("compression round trip failed")
	// ErrUnknownModel indicates an unsupported regression model name.
	ErrUnknownModel = errors.New("unknown model type")
)
