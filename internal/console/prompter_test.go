package console

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/infostat/errs"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	p, out := newTestPrompter("  hello \nlast")

	line, err := p.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "hello", line)

	line, err = p.ReadLine("> ")
	require.NoError(t, err, "final line without newline is still returned")
	require.Equal(t, "last", line)

	_, err = p.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "> > > ", out.String())
}

func TestReadCount(t *testing.T) {
	p, out := newTestPrompter("abc\n0\n-3\n4\n")

	n, err := p.ReadCount("How many? ")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 3, strings.Count(out.String(), "Invalid input. Please enter a positive integer."))

	p, _ = newTestPrompter("x\n")
	_, err = p.ReadCount("How many? ")
	require.ErrorIs(t, err, io.EOF)
}

func TestReadProbabilities(t *testing.T) {
	p, out := newTestPrompter("0.5\n1\n0\nabc\n-0.1\n0.25\n")

	probs, err := p.ReadProbabilities(2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.25}, probs)

	text := out.String()
	require.Equal(t, 1, strings.Count(text, "Enter probability 1: "))
	require.Equal(t, 5, strings.Count(text, "Enter probability 2: "))
	require.Equal(t, 4, strings.Count(text, "Invalid input."))
}

func TestReadProbabilities_HugeCount(t *testing.T) {
	p, _ := newTestPrompter("9223372036854775807\n0.5\n")

	n, err := p.ReadCount("How many? ")
	require.NoError(t, err)
	require.Equal(t, math.MaxInt64, n)

	require.NotPanics(t, func() {
		_, err = p.ReadProbabilities(n)
	})
	require.ErrorIs(t, err, io.EOF)
}

func TestReadProbabilities_EOF(t *testing.T) {
	p, _ := newTestPrompter("0.5\n")

	_, err := p.ReadProbabilities(3)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadPairedSample(t *testing.T) {
	input := strings.Join([]string{
		"1, 2, x", "4, 5, 6", // parse error
		"1,2,3", "4,5", // length mismatch
		"1, 2, 3", " 2,4 ,6 ",
	}, "\n") + "\n"
	p, out := newTestPrompter(input)

	x, y, err := p.ReadPairedSample()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, x)
	require.Equal(t, []float64{2, 4, 6}, y)
	require.Contains(t, out.String(), "Error: Please enter numeric values only.")
	require.Contains(t, out.String(), "Error: Prediction and target lists must have the same length.")
	require.Equal(t, 3, strings.Count(out.String(), "Enter the target values (separated by commas): "))
}

func TestReadPairedSample_EOF(t *testing.T) {
	p, _ := newTestPrompter("1,2,3\n")

	_, _, err := p.ReadPairedSample()
	require.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	p, out := newTestPrompter("maybe\ny\nN\n")

	ok, err := p.Confirm("Continue? ")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, out.String(), "Error: Please enter Y or N only.")

	ok, err = p.Confirm("Continue? ")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = p.Confirm("Continue? ")
	require.ErrorIs(t, err, io.EOF)
}

func TestParseList(t *testing.T) {
	values, err := ParseList(" 1.5, -2 ,3e2")
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2, 300}, values)

	for _, bad := range []string{"", "1,,2", "1,2,", "1;2", "NaN", "1,Inf", "0x1p-2", "1,-0X10"} {
		_, err := ParseList(bad)
		require.ErrorIs(t, err, errs.ErrParse, "input %q", bad)
	}
}

func TestParsePairedSample(t *testing.T) {
	_, _, err := ParsePairedSample("1,2", "1")
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, _, err = ParsePairedSample("1,2", "a,b")
	require.ErrorIs(t, err, errs.ErrParse)

	x, y, err := ParsePairedSample("7", "9")
	require.NoError(t, err)
	require.Equal(t, []float64{7}, x)
	require.Equal(t, []float64{9}, y)
}
