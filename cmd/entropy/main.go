// Command entropy computes the Shannon entropy of probability distributions
// entered line by line.
//
// With -bytes it instead reads lines of text and reports their byte entropy
// next to how well zstd, s2 and lz4 compress them.
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
	precision := flag.Int("precision", 2, "Decimals printed for entropy values")
	tolerance := flag.Float64("tolerance", 1e-9, "Allowed drift of the probability sum from 1 before warning")
	byteMode := flag.Bool("bytes", false, "Analyze lines of text as byte streams")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "precision":
			cfg.Entropy.Precision = *precision
		case "tolerance":
			cfg.Entropy.Tolerance = *tolerance
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

	runSession := sess.RunEntropy
	if *byteMode {
		runSession = sess.RunBytes
	}

	done := make(chan error, 1)
	go func() { done <- runSession(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("session failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		// The session may be blocked reading stdin.
		logger.Info("interrupted")
		return 130
	}

	return 0
}
