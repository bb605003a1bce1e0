package regression

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/arloliu/infostat/errs"
)

// Summary holds descriptive statistics of one series.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
}

// Describe computes the descriptive statistics of values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errs.ErrEmptyInput
	}

	data := stats.Float64Data(values)
	summary := Summary{Count: len(values)}

	var err error
	if summary.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute min: %w", err)
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute max: %w", err)
	}
	if summary.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute median: %w", err)
	}
	if summary.StdDev, err = stats.StandardDeviationPopulation(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute standard deviation: %w", err)
	}

	return summary, nil
}
