package entropy

import "math"

// Estimator accumulates byte frequencies and reports their Shannon entropy.
//
// It implements io.Writer, so it can sit behind io.Copy or io.MultiWriter.
// An Estimator is not safe for concurrent use.
type Estimator struct {
	counts [256]int
	total  int
}

// NewEstimator creates an empty Estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Write counts the bytes in data. It never fails.
func (e *Estimator) Write(data []byte) (int, error) {
	for _, b := range data {
		e.counts[b]++
	}
	e.total += len(data)

	return len(data), nil
}

// Len returns the number of bytes written since the last Reset.
func (e *Estimator) Len() int {
	return e.total
}

// Symbols returns the number of distinct byte values seen.
func (e *Estimator) Symbols() int {
	var n int
	for _, c := range e.counts {
		if c > 0 {
			n++
		}
	}

	return n
}

// Value returns the entropy in bits per byte, between 0 and 8.
//
// Unseen symbols are skipped, and a single repeated symbol yields 0.
func (e *Estimator) Value() float64 {
	if e.total == 0 {
		return 0
	}

	var h float64
	for _, c := range e.counts {
		if c == 0 || c == e.total {
			continue
		}
		p := float64(c) / float64(e.total)
		h -= p * math.Log2(p)
	}

	return h
}

// Distribution returns the observed probability of each seen byte, in byte order.
func (e *Estimator) Distribution() []float64 {
	if e.total == 0 {
		return nil
	}

	out := make([]float64, 0, e.Symbols())
	for _, c := range e.counts {
		if c > 0 {
			out = append(out, float64(c)/float64(e.total))
		}
	}

	return out
}

// Reset clears all counts.
func (e *Estimator) Reset() {
	clear(e.counts[:])
	e.total = 0
}
