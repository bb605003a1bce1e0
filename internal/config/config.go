// Package config loads the YAML configuration shared by the infostat binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/infostat/compress"
)

// LogConfig selects the logger output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// EntropyConfig controls the entropy session.
type EntropyConfig struct {
	// Precision is the number of decimals printed for the entropy value.
	Precision int `yaml:"precision"`
	// Tolerance is how far the probability sum may drift from 1 before a
	// warning is logged.
	Tolerance float64 `yaml:"tolerance"`
	// Algorithms are the codecs used by the byte randomness report.
	Algorithms []string `yaml:"algorithms"`
}

// RegressionConfig controls the regression session.
type RegressionConfig struct {
	// Precision is the number of decimals printed for every metric.
	Precision int `yaml:"precision"`
	// MinPoints is the smallest accepted sample size.
	MinPoints int `yaml:"min_points"`
	// Candidates enables the non-linear candidate models.
	Candidates bool `yaml:"candidates"`
	// Summary prints the descriptive statistics of both series.
	Summary bool `yaml:"summary"`
}

// PlotConfig controls the regression plot.
type PlotConfig struct {
	// Output is the PNG path. Empty disables plotting.
	Output string `yaml:"output"`
	// Width and Height are in centimeters.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config is the root configuration document.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Entropy    EntropyConfig    `yaml:"entropy"`
	Regression RegressionConfig `yaml:"regression"`
	Plot       PlotConfig       `yaml:"plot"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Entropy: EntropyConfig{
			Precision:  2,
			Tolerance:  1e-9,
			Algorithms: []string{"zstd", "s2", "lz4"},
		},
		Regression: RegressionConfig{
			Precision: 3,
			MinPoints: 1,
		},
		Plot: PlotConfig{
			Width:  16,
			Height: 12,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var problems []error

	if _, err := c.Log.level(); err != nil {
		problems = append(problems, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if c.Entropy.Precision < 0 {
		problems = append(problems, fmt.Errorf("entropy.precision cannot be negative, got %d", c.Entropy.Precision))
	}
	if c.Entropy.Tolerance < 0 {
		problems = append(problems, fmt.Errorf("entropy.tolerance cannot be negative, got %g", c.Entropy.Tolerance))
	}
	if _, err := c.Entropy.Codecs(); err != nil {
		problems = append(problems, err)
	}

	if c.Regression.Precision < 0 {
		problems = append(problems, fmt.Errorf("regression.precision cannot be negative, got %d", c.Regression.Precision))
	}
	if c.Regression.MinPoints < 1 {
		problems = append(problems, fmt.Errorf("regression.min_points must be at least 1, got %d", c.Regression.MinPoints))
	}

	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		problems = append(problems, fmt.Errorf("plot size must be positive, got %gx%g", c.Plot.Width, c.Plot.Height))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(problems...))
	}

	return nil
}

// Codecs resolves the configured algorithm names.
func (e EntropyConfig) Codecs() ([]compress.Algorithm, error) {
	algs := make([]compress.Algorithm, 0, len(e.Algorithms))
	for _, name := range e.Algorithms {
		alg, err := compress.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("entropy.algorithms: %w", err)
		}
		algs = append(algs, alg)
	}

	return algs, nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

// NewLogger builds a slog.Logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
