package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/infostat/errs"
	"github.com/arloliu/infostat/internal/options"
)

// Analyze fits the least-squares line of targets on predictions, evaluates
// it, and summarizes both series.
//
// Example:
//
//	result, err := regression.Analyze(predictions, targets, regression.WithCandidateModels(true))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Line.Formula(), result.Metrics.RSquared)
//	fmt.Println("best model:", result.BestFit.Formula)
func Analyze(predictions, targets []float64, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid analyze option: %w", err)
	}

	if err := checkPaired(predictions, targets); err != nil {
		return nil, err
	}
	if len(predictions) < cfg.MinPoints {
		return nil, fmt.Errorf("%w: got %d pairs, need at least %d", errs.ErrInsufficientData, len(predictions), cfg.MinPoints)
	}

	line, err := Fit(predictions, targets)
	if err != nil {
		return nil, err
	}

	metrics, err := ComputeMetrics(predictions, targets, line)
	if err != nil {
		return nil, err
	}

	xSummary, err := Describe(predictions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe predictions: %w", err)
	}
	ySummary, err := Describe(targets)
	if err != nil {
		return nil, fmt.Errorf("failed to describe targets: %w", err)
	}

	models := []*Model{linearModel(line, predictions, targets)}
	if cfg.Candidates {
		models = append(models, fitCandidates(predictions, targets)...)
		slices.SortStableFunc(models, func(a, b *Model) int {
			switch {
			case a.RSquared > b.RSquared:
				return -1
			case a.RSquared < b.RSquared:
				return 1
			default:
				return 0
			}
		})
	}

	return &Result{
		Line:        line,
		Metrics:     metrics,
		Predictions: xSummary,
		Targets:     ySummary,
		Models:      models,
		BestFit:     models[0],
	}, nil
}

func linearModel(line Line, x, y []float64) *Model {
	est := NewLinearEstimator(line.Slope, line.Intercept)

	return newModel(est, x, y, fmt.Sprintf("Y = %.3f·X + %.3f", line.Slope, line.Intercept))
}

// fitCandidates fits every non-linear model whose domain admits the sample.
func fitCandidates(x, y []float64) []*Model {
	fitters := []func(x, y []float64) (*Model, bool){
		fitHyperbolic,
		fitLogarithmic,
		fitPower,
		fitExponential,
		fitPolynomial,
	}

	models := make([]*Model, 0, len(fitters))
	for _, fit := range fitters {
		if m, ok := fit(x, y); ok {
			models = append(models, m)
		}
	}

	return models
}

// newModel evaluates est over the sample and fills in R² and RMSE.
func newModel(est Estimator, x, y []float64, formula string) *Model {
	predicted := make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = est.Estimate(xi)
	}

	return &Model{
		Type:         est.Type(),
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formula,
		Estimator:    est,
	}
}

// leastSquares fits v = a + b·u and reports false when u has no spread.
func leastSquares(u, v []float64) (a, b float64, ok bool) {
	n := float64(len(u))
	var sumU, sumV, sumUV, sumU2 float64
	for i := range u {
		sumU += u[i]
		sumV += v[i]
		sumUV += u[i] * v[i]
		sumU2 += u[i] * u[i]
	}

	meanU := sumU / n
	meanV := sumV / n
	den := sumU2 - n*meanU*meanU
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, 0, false
	}

	b = (sumUV - n*meanU*meanV) / den
	a = meanV - b*meanU

	return a, b, true
}

func transform(values []float64, fn func(float64) (float64, bool)) ([]float64, bool) {
	out := make([]float64, len(values))
	for i, v := range values {
		t, ok := fn(v)
		if !ok {
			return nil, false
		}
		out[i] = t
	}

	return out, true
}

func inverse(v float64) (float64, bool) { return 1 / v, v != 0 }

func logPositive(v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}

	return math.Log(v), true
}

// fitHyperbolic fits Y = a + b / X as a line in 1/X. Requires X != 0.
func fitHyperbolic(x, y []float64) (*Model, bool) {
	u, ok := transform(x, inverse)
	if !ok {
		return nil, false
	}
	a, b, ok := leastSquares(u, y)
	if !ok {
		return nil, false
	}

	return newModel(NewHyperbolicEstimator(a, b), x, y, fmt.Sprintf("Y = %.3f + %.3f / X", a, b)), true
}

// fitLogarithmic fits Y = a + b·ln(X) as a line in ln(X). Requires X > 0.
func fitLogarithmic(x, y []float64) (*Model, bool) {
	u, ok := transform(x, logPositive)
	if !ok {
		return nil, false
	}
	a, b, ok := leastSquares(u, y)
	if !ok {
		return nil, false
	}

	return newModel(NewLogarithmicEstimator(a, b), x, y, fmt.Sprintf("Y = %.3f + %.3f·ln(X)", a, b)), true
}

// fitPower fits ln(Y) = ln(a) + b·ln(X). Requires X > 0 and Y > 0.
func fitPower(x, y []float64) (*Model, bool) {
	u, ok := transform(x, logPositive)
	if !ok {
		return nil, false
	}
	v, ok := transform(y, logPositive)
	if !ok {
		return nil, false
	}
	logA, b, ok := leastSquares(u, v)
	if !ok {
		return nil, false
	}
	a := math.Exp(logA)

	return newModel(NewPowerEstimator(a, b), x, y, fmt.Sprintf("Y = %.3f·X^%.3f", a, b)), true
}

// fitExponential fits ln(Y) = ln(a) + b·X. Requires Y > 0.
func fitExponential(x, y []float64) (*Model, bool) {
	v, ok := transform(y, logPositive)
	if !ok {
		return nil, false
	}
	logA, b, ok := leastSquares(x, v)
	if !ok {
		return nil, false
	}
	a := math.Exp(logA)

	return newModel(NewExponentialEstimator(a, b), x, y, fmt.Sprintf("Y = %.3f·e^(%.3f·X)", a, b)), true
}

// fitPolynomial fits Y = a + b·X + c·X² through the normal equations.
// It needs at least 3 points and a non-singular system.
func fitPolynomial(x, y []float64) (*Model, bool) {
	n := len(x)
	if n < 3 {
		return nil, false
	}

	// [n    Σx   Σx²] [a]   [Σy  ]
	// [Σx   Σx²  Σx³] [b] = [Σxy ]
	// [Σx²  Σx³  Σx⁴] [c]   [Σx²y]
	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := 0; i < n; i++ {
		xi := x[i]
		xi2 := xi * xi
		yi := y[i]

		sumX += xi
		sumX2 += xi2
		sumX3 += xi2 * xi
		sumX4 += xi2 * xi2
		sumY += yi
		sumXY += xi * yi
		sumX2Y += xi2 * yi
	}

	fn := float64(n)
	det := fn*(sumX2*sumX4-sumX3*sumX3) - sumX*(sumX*sumX4-sumX3*sumX2) + sumX2*(sumX*sumX3-sumX2*sumX2)
	if math.Abs(det) < 1e-10 {
		return nil, false
	}

	// Cramer's rule, replacing one column at a time with the right-hand side.
	detA := sumY*(sumX2*sumX4-sumX3*sumX3) - sumX*(sumXY*sumX4-sumX3*sumX2Y) + sumX2*(sumXY*sumX3-sumX2*sumX2Y)
	detB := fn*(sumXY*sumX4-sumX2Y*sumX3) - sumY*(sumX*sumX4-sumX3*sumX2) + sumX2*(sumX*sumX2Y-sumXY*sumX2)
	detC := fn*(sumX2*sumX2Y-sumX3*sumXY) - sumX*(sumX*sumX2Y-sumXY*sumX2) + sumY*(sumX*sumX3-sumX2*sumX2)

	a, b, c := detA/det, detB/det, detC/det

	return newModel(NewPolynomialEstimator(a, b, c), x, y, fmt.Sprintf("Y = %.3f + %.3f·X + %.3f·X²", a, b, c)), true
}

// calculateRSquared returns 1 - SS_res/SS_tot, or 0 when the observations have no spread.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	m := mean(observed)
	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - m) * (observed[i] - m)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE returns √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
