// Command regress fits a least-squares line of target values on predicted
// values entered as comma separated lists, prints the fit metrics and
// optionally saves a chart of the sample.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arloliu/infostat/internal/config"
	"github.com/arloliu/infostat/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Optional YAML configuration file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "", "Log format: text or json")
	precision := flag.Int("precision", 3, "Decimals printed for regression values")
	minPoints := flag.Int("min-points", 1, "Minimum number of pairs accepted")
	candidates := flag.Bool("candidates", false, "Also fit and rank non-linear models")
	summary := flag.Bool("summary", false, "Print descriptive statistics of both series")
	plotOutput := flag.String("plot", "", "Optional chart output file (.png, .svg, .pdf)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "precision":
			cfg.Regression.Precision = *precision
		case "min-points":
			cfg.Regression.MinPoints = *minPoints
		case "candidates":
			cfg.Regression.Candidates = *candidates
		case "summary":
			cfg.Regression.Summary = *summary
		case "plot":
			cfg.Plot.Output = *plotOutput
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sess, err := session.New(os.Stdin, os.Stdout, cfg, logger)
	if err != nil {
		logger.Error("failed to start session", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- sess.RunRegression(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("session failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		logger.Info("interrupted")
		return 130
	}

	return 0
}
