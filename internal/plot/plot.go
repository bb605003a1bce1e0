// Package plot draws the regression chart: the sample as a scatter, the
// fitted line, dashed connectors between consecutive samples and a
// coordinate label on every point.
package plot

import (
	"cmp"
	"fmt"
	"image/color"
	"io"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/infostat/errs"
	"github.com/arloliu/infostat/regression"
)

const (
	title  = "Regression Line Graph"
	xLabel = "Predicted Values"
	yLabel = "Target Values"
)

var (
	lineColor      = color.RGBA{R: 220, A: 255}
	connectorColor = color.RGBA{B: 200, A: 128}
)

// Chart renders regression charts of a fixed size.
type Chart struct {
	Width  vg.Length
	Height vg.Length
}

// New creates a chart of the given size in centimeters.
func New(widthCm, heightCm float64) *Chart {
	return &Chart{
		Width:  vg.Length(widthCm) * vg.Centimeter,
		Height: vg.Length(heightCm) * vg.Centimeter,
	}
}

// Build assembles the plot without rendering it. The inputs are not modified.
func (c *Chart) Build(predictions, targets []float64, line regression.Line) (*plot.Plot, error) {
	if len(predictions) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if len(predictions) != len(targets) {
		return nil, fmt.Errorf("%w: %d predictions vs %d targets", errs.ErrLengthMismatch, len(predictions), len(targets))
	}

	pts := sortedPoints(predictions, targets)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	connectors, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create connectors: %w", err)
	}
	connectors.LineStyle.Color = connectorColor
	connectors.LineStyle.Width = vg.Points(0.5)
	connectors.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	fitted := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		fitted[i] = plotter.XY{X: pt.X, Y: line.Estimate(pt.X)}
	}
	fit, err := plotter.NewLine(fitted)
	if err != nil {
		return nil, fmt.Errorf("failed to create fitted line: %w", err)
	}
	fit.LineStyle.Color = lineColor
	fit.LineStyle.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}

	text := make([]string, len(pts))
	for i, pt := range pts {
		text[i] = fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: text})
	if err != nil {
		return nil, fmt.Errorf("failed to create labels: %w", err)
	}

	// Connectors first so they sit underneath.
	p.Add(connectors, fit, scatter, labels)

	return p, nil
}

// Render writes the chart to w in the given format ("png", "svg", "pdf", ...).
func (c *Chart) Render(w io.Writer, format string, predictions, targets []float64, line regression.Line) error {
	p, err := c.Build(predictions, targets, line)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	return nil
}

// Save writes the chart to path. The format follows the file extension.
func (c *Chart) Save(path string, predictions, targets []float64, line regression.Line) error {
	p, err := c.Build(predictions, targets, line)
	if err != nil {
		return err
	}

	if err := p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}

	return nil
}

// sortedPoints pairs the two series and orders them by x, then y.
func sortedPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	slices.SortFunc(pts, func(a, b plotter.XY) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}

		return cmp.Compare(a.Y, b.Y)
	})

	return pts
}
