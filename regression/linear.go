package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/infostat/errs"
)

// Line is an ordinary least-squares fit Y = Slope·X + Intercept, together
// with the intermediate sums it was derived from.
type Line struct {
	// Slope is the fitted slope (a).
	Slope float64
	// Intercept is the fitted intercept (b).
	Intercept float64
	// N is the number of paired observations.
	N int
	// MeanX is the mean of the regressor (predictions).
	MeanX float64
	// MeanY is the mean of the response (targets).
	MeanY float64
	// SSx is Σ(x - MeanX)².
	SSx float64
	// SSxy is Σ(x - MeanX)(y - MeanY).
	SSxy float64
}

// Estimate evaluates the line at x.
func (l Line) Estimate(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Formula returns the line as "Y = aX + b" with three decimals.
func (l Line) Formula() string {
	return fmt.Sprintf("Y = %.3fX + %.3f", l.Slope, l.Intercept)
}

// Metrics holds goodness-of-fit statistics for a Line over a paired sample.
//
// MAE, MSE and RMSE compare predictions with targets directly; SSR compares
// the fitted line with the targets.
type Metrics struct {
	N         int
	MeanY     float64
	VarianceY float64 // population variance Σ(y - MeanY)² / n
	MAE       float64 // Σ|p - t| / n
	MSE       float64 // Σ(p - t)² / n
	RMSE      float64 // √MSE
	SSR       float64 // Σ(Slope·x + Intercept - y)²
	SST       float64 // Σ(y - MeanY)²
	// RSquared is 1 - SSR/SST.
	RSquared float64
	// AltRSquared is 1 - MSE/VarianceY, the share of target variance not
	// explained by the raw prediction error.
	AltRSquared float64
}

// DegenerateInputError reports a zero denominator in a regression quantity.
type DegenerateInputError struct {
	// Quantity names the zero denominator, "SSx" or "SST".
	Quantity string
}

func (e *DegenerateInputError) Error() string {
	switch e.Quantity {
	case "SSx":
		return fmt.Sprintf("%v: SSx is zero, all predicted values are identical", errs.ErrDegenerateInput)
	case "SST":
		return fmt.Sprintf("%v: SST is zero, all target values are identical", errs.ErrDegenerateInput)
	default:
		return fmt.Sprintf("%v: %s is zero", errs.ErrDegenerateInput, e.Quantity)
	}
}

func (e *DegenerateInputError) Unwrap() error {
	return errs.ErrDegenerateInput
}

// checkPaired validates the shape of a paired sample.
func checkPaired(predictions, targets []float64) error {
	if len(predictions) != len(targets) {
		return fmt.Errorf("%w: %d predictions vs %d targets", errs.ErrLengthMismatch, len(predictions), len(targets))
	}
	if len(predictions) == 0 {
		return errs.ErrEmptyInput
	}

	return nil
}

// constant reports whether every value equals the first. Rounding in the
// mean can leave a tiny non-zero spread for such series, so the degenerate
// checks test the values themselves.
func constant(values []float64) bool {
	return slices.Min(values) == slices.Max(values)
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Fit computes the least-squares line of targets on predictions.
//
// Predictions are the regressor. Fit returns errs.ErrLengthMismatch or
// errs.ErrEmptyInput for malformed samples, and a *DegenerateInputError when
// every prediction is identical (SSx == 0).
func Fit(predictions, targets []float64) (Line, error) {
	if err := checkPaired(predictions, targets); err != nil {
		return Line{}, err
	}

	n := len(predictions)
	meanX := mean(predictions)
	meanY := mean(targets)

	var ssx, ssxy float64
	for i, x := range predictions {
		dx := x - meanX
		ssx += dx * dx
		ssxy += dx * (targets[i] - meanY)
	}

	if ssx == 0 || constant(predictions) {
		return Line{}, &DegenerateInputError{Quantity: "SSx"}
	}

	slope := ssxy / ssx

	return Line{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		N:         n,
		MeanX:     meanX,
		MeanY:     meanY,
		SSx:       ssx,
		SSxy:      ssxy,
	}, nil
}

// ComputeMetrics evaluates line against the paired sample.
//
// It returns a *DegenerateInputError when every target is identical
// (SST == 0), since neither R² variant is defined then.
func ComputeMetrics(predictions, targets []float64, line Line) (Metrics, error) {
	if err := checkPaired(predictions, targets); err != nil {
		return Metrics{}, err
	}

	n := float64(len(targets))
	meanY := mean(targets)

	var absErr, sqErr, ssr, sst float64
	for i, x := range predictions {
		y := targets[i]
		diff := x - y
		absErr += math.Abs(diff)
		sqErr += diff * diff

		residual := line.Slope*x + line.Intercept - y
		ssr += residual * residual

		dy := y - meanY
		sst += dy * dy
	}

	if sst == 0 || constant(targets) {
		return Metrics{}, &DegenerateInputError{Quantity: "SST"}
	}

	variance := sst / n
	mse := sqErr / n

	return Metrics{
		N:           len(targets),
		MeanY:       meanY,
		VarianceY:   variance,
		MAE:         absErr / n,
		MSE:         mse,
		RMSE:        math.Sqrt(mse),
		SSR:         ssr,
		SST:         sst,
		RSquared:    1 - ssr/sst,
		AltRSquared: 1 - mse/variance,
	}, nil
}
