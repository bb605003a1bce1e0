// Package session runs the interactive collect, compute, present and
// continue cycles of the infostat tools.
//
// A session ends when the user declines to continue, when input reaches end
// of file, or when its context is cancelled. Computation errors are shown
// to the user and the cycle starts over.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/infostat/entropy"
	"github.com/arloliu/infostat/internal/config"
	"github.com/arloliu/infostat/internal/console"
	"github.com/arloliu/infostat/internal/hash"
	"github.com/arloliu/infostat/internal/plot"
	"github.com/arloliu/infostat/regression"
)

const (
	countPrompt        = "Enter the number of probabilities you want to enter: "
	entropyAgainPrompt = "Do you want to calculate entropy again? (Y/N): "
	textPrompt         = "Enter the text to analyze: "
	bytesAgainPrompt   = "Do you want to analyze more text? (Y/N): "
	regressionPrompt   = "Do you want to continue? (Y/N): "
	plotFailureMessage = "Error: failed to draw graph"
)

// Session binds the console to the computation engines.
type Session struct {
	prompter  *console.Prompter
	presenter *console.Presenter
	logger    *slog.Logger
	cfg       config.Config
	chart     *plot.Chart
}

// New creates a session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, cfg config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	presenter, err := console.NewPresenter(out,
		console.WithEntropyPrecision(cfg.Entropy.Precision),
		console.WithRegressionPrecision(cfg.Regression.Precision),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	s := &Session{
		prompter:  console.NewPrompter(in, out),
		presenter: presenter,
		logger:    logger,
		cfg:       cfg,
	}
	if cfg.Plot.Output != "" {
		s.chart = plot.New(cfg.Plot.Width, cfg.Plot.Height)
	}

	return s, nil
}

// RunEntropy repeatedly collects a probability distribution and prints its
// entropy.
func (s *Session) RunEntropy(ctx context.Context) error {
	for cycle := 1; ; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.prompter.ReadCount(countPrompt)
		if err != nil {
			return s.finish(err)
		}
		probabilities, err := s.prompter.ReadProbabilities(n)
		if err != nil {
			return s.finish(err)
		}

		sample := fingerprint(probabilities)
		if !entropy.IsNormalized(probabilities, s.cfg.Entropy.Tolerance) {
			s.logger.Warn("probabilities do not sum to 1",
				slog.String("sample", sample),
				slog.Float64("sum", entropy.Sum(probabilities)))
		}

		bits, err := entropy.Calculate(probabilities)
		if err != nil {
			s.logger.Warn("entropy rejected", slog.String("sample", sample), slog.String("error", err.Error()))
			s.presenter.Error(err)

			continue
		}

		s.logger.Debug("entropy computed",
			slog.Int("cycle", cycle),
			slog.String("sample", sample),
			slog.Int("n", n),
			slog.Float64("bits", bits))
		s.presenter.Entropy(bits)

		again, err := s.prompter.Confirm(entropyAgainPrompt)
		if err != nil {
			return s.finish(err)
		}
		if !again {
			return nil
		}
	}
}

// RunBytes repeatedly reads a line of text and prints its byte entropy and
// compressibility.
func (s *Session) RunBytes(ctx context.Context) error {
	codecs, err := s.cfg.Entropy.Codecs()
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := s.prompter.ReadLine(textPrompt)
		if err != nil {
			return s.finish(err)
		}

		report, err := entropy.AnalyzeBytes([]byte(text), codecs...)
		if err != nil {
			s.presenter.Error(err)

			continue
		}

		s.logger.Debug("byte entropy computed",
			slog.String("sample", fmt.Sprintf("%016x", hash.ID(text))),
			slog.Int("length", report.Length),
			slog.Float64("bits_per_byte", report.Entropy))
		s.presenter.Bytes(report)

		again, err := s.prompter.Confirm(bytesAgainPrompt)
		if err != nil {
			return s.finish(err)
		}
		if !again {
			return nil
		}
	}
}

// RunRegression repeatedly collects a paired sample, prints the fitted line
// with its metrics and, when an output path is configured, saves the chart.
func (s *Session) RunRegression(ctx context.Context) error {
	opts := []regression.AnalyzeOption{
		regression.WithMinPoints(s.cfg.Regression.MinPoints),
		regression.WithCandidateModels(s.cfg.Regression.Candidates),
	}

	for cycle := 1; ; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		predictions, targets, err := s.prompter.ReadPairedSample()
		if err != nil {
			return s.finish(err)
		}

		sample := fingerprint(predictions, targets)
		result, err := regression.Analyze(predictions, targets, opts...)
		if err != nil {
			s.logger.Warn("regression rejected", slog.String("sample", sample), slog.String("error", err.Error()))
			s.presenter.Error(err)

			continue
		}

		s.logger.Debug("regression computed",
			slog.Int("cycle", cycle),
			slog.String("sample", sample),
			slog.Int("n", result.Metrics.N),
			slog.Float64("slope", result.Line.Slope),
			slog.Float64("intercept", result.Line.Intercept),
			slog.Float64("r_squared", result.Metrics.RSquared))

		s.presenter.Regression(result.Line, result.Metrics)
		if s.cfg.Regression.Summary {
			s.presenter.Summary(result.Predictions, result.Targets)
		}
		if s.cfg.Regression.Candidates {
			s.presenter.Models(result.Models)
		}
		s.draw(sample, predictions, targets, result.Line)

		again, err := s.prompter.Confirm(regressionPrompt)
		if err != nil {
			return s.finish(err)
		}
		if !again {
			return nil
		}
	}
}

// draw saves the chart when plotting is enabled. Failures are reported but
// never end the session.
func (s *Session) draw(sample string, predictions, targets []float64, line regression.Line) {
	if s.chart == nil {
		return
	}

	path := s.cfg.Plot.Output
	if err := s.chart.Save(path, predictions, targets, line); err != nil {
		s.logger.Error("plot failed", slog.String("sample", sample), slog.String("error", err.Error()))
		s.presenter.Error(fmt.Errorf("%s: %w", plotFailureMessage, err))

		return
	}
	s.logger.Info("plot saved", slog.String("sample", sample), slog.String("path", path))
}

// finish maps end of input to a normal exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed")
		return nil
	}

	return err
}

func fingerprint(series ...[]float64) string {
	return fmt.Sprintf("%016x", hash.Sample(series...))
}
