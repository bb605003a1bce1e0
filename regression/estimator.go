package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/infostat/errs"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: Y = a·X + b
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: Y = a + b / X
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: Y = a + b·ln(X)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: Y = a·X^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: Y = a·e^(b·X)
	ModelTypeExponential
	// ModelTypePolynomial represents the quadratic model: Y = a + b·X + c·X²
	ModelTypePolynomial
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	lower := strings.ToLower(strings.TrimSpace(name))
	for mt, n := range modelTypeNames {
		if n == lower {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted single-regressor model.
type Estimator interface {
	// Estimate returns the model's Y for x, or NaN when x is outside the
	// model's domain (x <= 0 for logarithmic and power, x == 0 for hyperbolic).
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. The count must match the
	// model: 3 for polynomial, 2 for every other type.
	SetCoefficients(coeffs []float64) error
}

// pair holds the two coefficients shared by most models.
type pair struct {
	a, b float64
}

func (p *pair) coefficients() []float64 {
	return []float64{p.a, p.b}
}

func (p *pair) set(mt ModelType, coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%s model expects exactly 2 coefficients, got %d", mt, len(coeffs))
	}
	p.a, p.b = coeffs[0], coeffs[1]

	return nil
}

// LinearEstimator implements Y = a·X + b, where a is the slope.
type LinearEstimator struct{ pair }

// NewLinearEstimator creates a linear estimator from slope and intercept.
func NewLinearEstimator(slope, intercept float64) *LinearEstimator {
	return &LinearEstimator{pair{a: slope, b: intercept}}
}

func (l *LinearEstimator) Estimate(x float64) float64 { return l.a*x + l.b }
func (l *LinearEstimator) Type() ModelType            { return ModelTypeLinear }
func (l *LinearEstimator) Coefficients() []float64    { return l.coefficients() }

func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	return l.set(ModelTypeLinear, coeffs)
}

// HyperbolicEstimator implements Y = a + b / X.
type HyperbolicEstimator struct{ pair }

// NewHyperbolicEstimator creates a new hyperbolic estimator with the given coefficients.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{pair{a: a, b: b}}
}

func (h *HyperbolicEstimator) Estimate(x float64) float64 {
	if x == 0 {
		return math.NaN()
	}

	return h.a + h.b/x
}

func (h *HyperbolicEstimator) Type() ModelType         { return ModelTypeHyperbolic }
func (h *HyperbolicEstimator) Coefficients() []float64 { return h.coefficients() }

func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	return h.set(ModelTypeHyperbolic, coeffs)
}

// LogarithmicEstimator implements Y = a + b·ln(X).
type LogarithmicEstimator struct{ pair }

// NewLogarithmicEstimator creates a new logarithmic estimator with the given coefficients.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{pair{a: a, b: b}}
}

func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a + l.b*math.Log(x)
}

func (l *LogarithmicEstimator) Type() ModelType         { return ModelTypeLogarithmic }
func (l *LogarithmicEstimator) Coefficients() []float64 { return l.coefficients() }

func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	return l.set(ModelTypeLogarithmic, coeffs)
}

// PowerEstimator implements Y = a·X^b.
type PowerEstimator struct{ pair }

// NewPowerEstimator creates a new power estimator with the given coefficients.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{pair{a: a, b: b}}
}

func (p *PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return p.a * math.Pow(x, p.b)
}

func (p *PowerEstimator) Type() ModelType         { return ModelTypePower }
func (p *PowerEstimator) Coefficients() []float64 { return p.coefficients() }

func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	return p.set(ModelTypePower, coeffs)
}

// ExponentialEstimator implements Y = a·e^(b·X).
type ExponentialEstimator struct{ pair }

// NewExponentialEstimator creates a new exponential estimator with the given coefficients.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{pair{a: a, b: b}}
}

func (e *ExponentialEstimator) Estimate(x float64) float64 { return e.a * math.Exp(e.b*x) }
func (e *ExponentialEstimator) Type() ModelType            { return ModelTypeExponential }
func (e *ExponentialEstimator) Coefficients() []float64    { return e.coefficients() }

func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	return e.set(ModelTypeExponential, coeffs)
}

// PolynomialEstimator implements Y = a + b·X + c·X².
type PolynomialEstimator struct {
	a, b, c float64
}

// NewPolynomialEstimator creates a new polynomial estimator with the given coefficients.
func NewPolynomialEstimator(a, b, c float64) *PolynomialEstimator {
	return &PolynomialEstimator{a: a, b: b, c: c}
}

func (p *PolynomialEstimator) Estimate(x float64) float64 { return p.a + p.b*x + p.c*x*x }
func (p *PolynomialEstimator) Type() ModelType            { return ModelTypePolynomial }
func (p *PolynomialEstimator) Coefficients() []float64    { return []float64{p.a, p.b, p.c} }

func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("polynomial model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	p.a, p.b, p.c = coeffs[0], coeffs[1], coeffs[2]

	return nil
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeHyperbolic:
		return NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0)
	case ModelTypePolynomial:
		return NewPolynomialEstimator(0, 0, 0)
	default:
		return nil
	}
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Example:
//
//	est, err := NewEstimator("linear", []float64{2, 0})
//	if err != nil {
//	    return err
//	}
//	y := est.Estimate(4) // 8
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	estimator := newEmptyEstimator(ModelTypeFromString(name))
	if estimator == nil {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("%w: %s. Supported types: %s", errs.ErrUnknownModel, name, strings.Join(supported, ", "))
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
