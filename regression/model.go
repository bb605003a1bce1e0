package regression

import "fmt"

// Model is a fitted single-regressor model with its goodness of fit.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients, in the order the
	// matching Estimator constructor takes them.
	Coefficients []float64
	// RSquared is the coefficient of determination of the model's own predictions.
	RSquared float64
	// RMSE is the root mean square error of the model's own predictions.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of Analyze.
type Result struct {
	// Line is the least-squares fit of targets on predictions.
	Line Line
	// Metrics are the goodness-of-fit statistics of Line.
	Metrics Metrics
	// Predictions and Targets summarize the two input series.
	Predictions Summary
	Targets     Summary
	// Models holds the linear model and, when candidate models are enabled,
	// every non-linear model that could be fitted, ranked by R² (best first).
	Models []*Model
	// BestFit is Models[0].
	BestFit *Model
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return fmt.Sprintf("Result{Line: %s, BestFit: nil}", r.Line.Formula())
	}

	return fmt.Sprintf("Result{Line: %s, R²: %.4f, BestFit: %s, TotalModels: %d}",
		r.Line.Formula(), r.Metrics.RSquared, r.BestFit.Type, len(r.Models))
}
