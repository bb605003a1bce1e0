package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arloliu/infostat/entropy"
	"github.com/arloliu/infostat/internal/options"
	"github.com/arloliu/infostat/regression"
)

// Presenter renders computation results as plain text.
type Presenter struct {
	out                 io.Writer
	printer             *message.Printer
	entropyPrecision    int
	regressionPrecision int
}

// PresenterOption configures a Presenter.
type PresenterOption = options.Option[*Presenter]

// WithEntropyPrecision sets the decimals printed for entropy values.
func WithEntropyPrecision(digits int) PresenterOption {
	return options.New(func(p *Presenter) error {
		if digits < 0 {
			return fmt.Errorf("entropy precision cannot be negative, got %d", digits)
		}
		p.entropyPrecision = digits

		return nil
	})
}

// WithRegressionPrecision sets the decimals printed for regression values.
func WithRegressionPrecision(digits int) PresenterOption {
	return options.New(func(p *Presenter) error {
		if digits < 0 {
			return fmt.Errorf("regression precision cannot be negative, got %d", digits)
		}
		p.regressionPrecision = digits

		return nil
	})
}

// NewPresenter creates a presenter writing to w. Entropy values default to
// 2 decimals and regression values to 3.
func NewPresenter(w io.Writer, opts ...PresenterOption) (*Presenter, error) {
	p := &Presenter{
		out:                 w,
		printer:             message.NewPrinter(language.English),
		entropyPrecision:    2,
		regressionPrecision: 3,
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Entropy prints the entropy of a distribution.
func (p *Presenter) Entropy(bits float64) {
	fmt.Fprintf(p.out, "The entropy of the event is %.*f.\n", p.entropyPrecision, bits)
}

// Regression prints the fitted line and its metrics.
func (p *Presenter) Regression(line regression.Line, m regression.Metrics) {
	d := p.regressionPrecision
	fmt.Fprintf(p.out, "\nAverage X: %.*f\n", d, line.MeanX)
	fmt.Fprintf(p.out, "Average Y: %.*f\n", d, line.MeanY)
	fmt.Fprintf(p.out, "Regression line: Y = %.*fX + %.*f\n", d, line.Slope, d, line.Intercept)
	fmt.Fprintf(p.out, "MAE: %.*f\n", d, m.MAE)
	fmt.Fprintf(p.out, "MSE: %.*f\n", d, m.MSE)
	fmt.Fprintf(p.out, "RMSE: %.*f\n", d, m.RMSE)
	fmt.Fprintf(p.out, "SSR: %.*f\n", d, m.SSR)
	fmt.Fprintf(p.out, "SST: %.*f\n", d, m.SST)
	fmt.Fprintf(p.out, "R-squared: %.*f\n", d, m.RSquared)
	fmt.Fprintf(p.out, "Alternative R-squared: %.*f\n", d, m.AltRSquared)
}

// Summary prints the descriptive statistics of both input series.
func (p *Presenter) Summary(predictions, targets regression.Summary) {
	d := p.regressionPrecision
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nSERIES\tCOUNT\tMIN\tMAX\tMEAN\tMEDIAN\tSTDDEV")
	for _, row := range []struct {
		name string
		s    regression.Summary
	}{
		{"predicted", predictions},
		{"target", targets},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%.*f\t%.*f\t%.*f\t%.*f\t%.*f\n",
			row.name, row.s.Count, d, row.s.Min, d, row.s.Max, d, row.s.Mean, d, row.s.Median, d, row.s.StdDev)
	}
	_ = tw.Flush()
}

// Models prints the fitted models in rank order.
func (p *Presenter) Models(models []*regression.Model) {
	if len(models) == 0 {
		return
	}

	d := p.regressionPrecision
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nRANK\tMODEL\tR²\tRMSE\tFORMULA")
	for i, m := range models {
		fmt.Fprintf(tw, "%d\t%s\t%.*f\t%.*f\t%s\n", i+1, m.Type, d, m.RSquared, d, m.RMSE, m.Formula)
	}
	_ = tw.Flush()
}

// Bytes prints a byte randomness report.
func (p *Presenter) Bytes(r *entropy.ByteReport) {
	d := p.entropyPrecision
	p.printer.Fprintf(p.out, "Bytes analyzed: %d\n", r.Length)
	p.printer.Fprintf(p.out, "Distinct symbols: %d\n", r.Symbols)
	fmt.Fprintf(p.out, "Entropy: %.*f bits/byte (max %.*f, efficiency %.1f%%)\n",
		d, r.Entropy, d, r.MaxEntropy, r.Efficiency()*100)

	if len(r.Compression) == 0 {
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nALGORITHM\tSIZE\tRATIO\tSAVINGS")
	for _, s := range r.Compression {
		fmt.Fprintf(tw, "%s\t%s\t%.2f:1\t%.1f%%\n",
			s.Algorithm, p.printer.Sprintf("%d", s.CompressedSize), s.ReductionFactor(), s.SpaceSavings())
	}
	_ = tw.Flush()
}

// Error prints a computation error as a user-facing message.
func (p *Presenter) Error(err error) {
	fmt.Fprintf(p.out, "%v\n", err)
}
