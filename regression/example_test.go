package regression_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/infostat/errs"
	"github.com/arloliu/infostat/regression"
)

func ExampleFit() {
	line, err := regression.Fit([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(line.Formula())

	// Output:
	// Y = 2.000X + 0.000
}

func ExampleFit_degenerate() {
	_, err := regression.Fit([]float64{5, 5, 5}, []float64{1, 2, 3})
	fmt.Println(errors.Is(err, errs.ErrDegenerateInput))
	fmt.Println(err)

	// Output:
	// true
	// degenerate input: SSx is zero, all predicted values are identical
}

func ExampleComputeMetrics() {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 3, 5, 4}

	line, _ := regression.Fit(x, y)
	m, err := regression.ComputeMetrics(x, y, line)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("MAE: %.3f\nMSE: %.3f\nSSR: %.3f\nSST: %.3f\nR-squared: %.3f\n",
		m.MAE, m.MSE, m.SSR, m.SST, m.RSquared)

	// Output:
	// MAE: 1.000
	// MSE: 1.500
	// SSR: 1.800
	// SST: 5.000
	// R-squared: 0.640
}

func ExampleAnalyze() {
	x := []float64{1, 2, 4, 5, 10, 20}
	y := []float64{7, 5, 4, 3.8, 3.4, 3.2}

	result, err := regression.Analyze(x, y, regression.WithCandidateModels(true))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("best model:", result.BestFit.Type)

	// Output:
	// best model: hyperbolic
}

func ExampleNewLinearEstimator() {
	est := regression.NewLinearEstimator(0.8, 1.5)
	for _, x := range []float64{1, 2, 3} {
		fmt.Printf("%.0f -> %.1f\n", x, est.Estimate(x))
	}

	// Output:
	// 1 -> 2.3
	// 2 -> 3.1
	// 3 -> 3.9
}
