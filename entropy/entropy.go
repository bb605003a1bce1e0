package entropy

import (
	"fmt"
	"math"

	"github.com/arloliu/infostat/errs"
)

// InvalidProbabilityError reports the first probability outside (0, 1).
type InvalidProbabilityError struct {
	// Index is the position of the value in the input, or -1 when the value
	// was checked on its own.
	Index int
	// Value is the rejected probability.
	Value float64
}

func (e *InvalidProbabilityError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v (got %g)", errs.ErrInvalidProbability, e.Value)
	}

	return fmt.Sprintf("%v (got %g at position %d)", errs.ErrInvalidProbability, e.Value, e.Index+1)
}

func (e *InvalidProbabilityError) Unwrap() error {
	return errs.ErrInvalidProbability
}

// ValidateProbability returns an *InvalidProbabilityError unless 0 < p < 1.
// NaN is rejected.
func ValidateProbability(p float64) error {
	if !(p > 0 && p < 1) {
		return &InvalidProbabilityError{Index: -1, Value: p}
	}

	return nil
}

// Calculate returns the Shannon entropy Σ(-p·log2 p) of the distribution in bits.
//
// Values are validated and summed in input order; the first value outside
// (0, 1) aborts the computation with an *InvalidProbabilityError. An empty
// distribution returns errs.ErrEmptyInput.
func Calculate(probabilities []float64) (float64, error) {
	if len(probabilities) == 0 {
		return 0, errs.ErrEmptyInput
	}

	var h float64
	for i, p := range probabilities {
		if !(p > 0 && p < 1) {
			return 0, &InvalidProbabilityError{Index: i, Value: p}
		}
		h += -p * math.Log2(p)
	}

	return h, nil
}

// Sum returns the total probability mass of the distribution.
func Sum(probabilities []float64) float64 {
	var total float64
	for _, p := range probabilities {
		total += p
	}

	return total
}

// IsNormalized reports whether the distribution sums to 1 within tolerance.
func IsNormalized(probabilities []float64, tolerance float64) bool {
	return math.Abs(Sum(probabilities)-1) <= tolerance
}

// MaxEntropy returns log2(n), the entropy of a uniform distribution over n outcomes.
func MaxEntropy(n int) float64 {
	if n <= 0 {
		return 0
	}

	return math.Log2(float64(n))
}
