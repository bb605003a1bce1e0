// Package console implements the interactive side of the infostat tools:
// line-oriented input collection with re-prompting, and report rendering.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/infostat/entropy"
	"github.com/arloliu/infostat/errs"
)

// Prompter reads answers from an input stream, writing prompts and
// re-prompt messages to an output stream.
//
// Every read method returns io.EOF once the input is exhausted, so callers
// can treat end of input as a request to stop.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from r and prompting on w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// ReadLine prints prompt and returns the next input line without
// surrounding whitespace.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

// maxPreallocated bounds the slice capacity reserved ahead of input.
const maxPreallocated = 64

// ReadCount asks for a positive integer until one is entered.
func (p *Prompter) ReadCount(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(line)
		if convErr == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a positive integer.")
	}
}

// ReadProbabilities asks for n probabilities one at a time. A value that
// does not parse, or that entropy.ValidateProbability rejects, is asked for
// again.
func (p *Prompter) ReadProbabilities(n int) ([]float64, error) {
	// n comes from the user, so it only hints the capacity.
	probabilities := make([]float64, 0, min(n, maxPreallocated))
	for i := 0; i < n; i++ {
		for {
			line, err := p.ReadLine(fmt.Sprintf("Enter probability %d: ", i+1))
			if err != nil {
				return nil, err
			}

			v, err := ParseNumber(line)
			if err == nil {
				err = entropy.ValidateProbability(v)
			}
			if err == nil {
				probabilities = append(probabilities, v)
				break
			}
			fmt.Fprintln(p.out, "Invalid input. Please enter a probability greater than 0 and less than 1.")
		}
	}

	return probabilities, nil
}

// ReadPairedSample asks for the predicted and target lists, both as comma
// separated numbers, until two lists of equal length are entered.
func (p *Prompter) ReadPairedSample() ([]float64, []float64, error) {
	for {
		predLine, err := p.ReadLine("Enter the predicted values (separated by commas): ")
		if err != nil {
			return nil, nil, err
		}
		targetLine, err := p.ReadLine("Enter the target values (separated by commas): ")
		if err != nil {
			return nil, nil, err
		}

		predictions, targets, err := ParsePairedSample(predLine, targetLine)
		switch {
		case err == nil:
			return predictions, targets, nil
		case errors.Is(err, errs.ErrParse):
			fmt.Fprint(p.out, "Error: Please enter numeric values only.\n\n")
		case errors.Is(err, errs.ErrLengthMismatch):
			fmt.Fprint(p.out, "Error: Prediction and target lists must have the same length.\n\n")
		default:
			return nil, nil, err
		}
	}
}

// Confirm asks a yes/no question until the answer is Y or N, in any case.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(line) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		fmt.Fprint(p.out, "Error: Please enter Y or N only.\n\n")
	}
}

// ParseNumber parses a single finite decimal number. Hexadecimal floats
// such as "0x1p-2" are rejected.
func ParseNumber(s string) (float64, error) {
	text := strings.TrimSpace(s)
	digits := strings.TrimLeft(text, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("%w: %q is not a decimal number", errs.ErrParse, s)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrParse, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", errs.ErrParse, s)
	}

	return v, nil
}

// ParseList parses a comma separated list of numbers. Every element must
// parse, so an empty line or a trailing comma is an error.
func ParseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := ParseNumber(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// ParsePairedSample parses both lists and checks that their lengths match.
func ParsePairedSample(predictionLine, targetLine string) (predictions, targets []float64, err error) {
	predictions, err = ParseList(predictionLine)
	if err != nil {
		return nil, nil, err
	}
	targets, err = ParseList(targetLine)
	if err != nil {
		return nil, nil, err
	}
	if len(predictions) != len(targets) {
		return nil, nil, fmt.Errorf("%w: %d predictions vs %d targets", errs.ErrLengthMismatch, len(predictions), len(targets))
	}

	return predictions, targets, nil
}
