// Package regression fits a single-variable ordinary least-squares line to a
// paired sample and reports how well it fits.
//
// The sample is two equal-length series: predictions, used as the regressor
// X, and targets, the response Y.
//
// # Core Operations
//
//   - Fit computes the line Y = a·X + b from the centered sums SSx and SSxy
//   - ComputeMetrics evaluates a line: MAE, MSE, RMSE, SSR, SST and two R² variants
//   - Analyze runs both, summarizes each series, and optionally ranks
//     non-linear comparison models
//
// # Basic Usage
//
//	line, err := regression.Fit([]float64{1, 2, 3}, []float64{2, 4, 6})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(line.Formula()) // Y = 2.000X + 0.000
//
//	metrics, err := regression.ComputeMetrics(x, y, line)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("R²=%.3f RMSE=%.3f\n", metrics.RSquared, metrics.RMSE)
//
// # R-squared Variants
//
// Metrics carries two coefficients of determination:
//
//   - RSquared = 1 - SSR/SST, the share of target variance explained by the fitted line
//   - AltRSquared = 1 - MSE/Var(Y), computed from the raw prediction error, so it
//     scores the predictions themselves rather than the line fitted to them
//
// Both are normalized by the same total variation, so they agree whenever
// the fitted line is the identity Y = X.
//
// # Degenerate Input
//
// Division by zero is reported, not propagated as Inf or NaN. When every
// prediction is identical, SSx is zero and Fit fails; when every target is
// identical, SST is zero and ComputeMetrics fails. Both return a
// *DegenerateInputError that matches errs.ErrDegenerateInput.
//
// # Candidate Models
//
// With WithCandidateModels(true), Analyze also fits these models of Y on X
// and ranks all of them by R²:
//
//   - Hyperbolic: Y = a + b / X (requires X != 0)
//   - Logarithmic: Y = a + b·ln(X) (requires X > 0)
//   - Power: Y = a·X^b (requires X > 0 and Y > 0)
//   - Exponential: Y = a·e^(b·X) (requires Y > 0)
//   - Polynomial: Y = a + b·X + c·X² (requires 3 points)
//
// Models whose domain the sample violates are skipped.
//
// All functions are pure and safe for concurrent use on independent inputs.
package regression
