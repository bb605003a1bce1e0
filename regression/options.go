package regression

import (
	"fmt"

	"github.com/arloliu/infostat/internal/options"
)

// AnalyzeConfig holds configuration for Analyze.
type AnalyzeConfig struct {
	// MinPoints is the minimum number of pairs Analyze accepts.
	MinPoints int
	// Candidates enables fitting the non-linear comparison models.
	Candidates bool
}

// defaultAnalyzeConfig returns the default config: any non-empty sample, linear fit only.
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		MinPoints:  1,
		Candidates: false,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithMinPoints sets the minimum sample size. n must be at least 1.
func WithMinPoints(n int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if n < 1 {
			return fmt.Errorf("min points must be at least 1, got %d", n)
		}
		cfg.MinPoints = n

		return nil
	})
}

// WithCandidateModels enables or disables the non-linear comparison models.
func WithCandidateModels(enabled bool) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Candidates = enabled
	})
}
