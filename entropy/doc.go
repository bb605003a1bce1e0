// Package entropy computes Shannon entropy.
//
// The primary entry point is Calculate, which takes an explicit probability
// distribution:
//
//	h, err := entropy.Calculate([]float64{0.5, 0.25, 0.25})
//	if err != nil {
//	    var invalid *entropy.InvalidProbabilityError
//	    if errors.As(err, &invalid) {
//	        fmt.Println("bad value:", invalid.Value)
//	    }
//	    return err
//	}
//	fmt.Printf("%.2f bits\n", h) // 1.50 bits
//
// Every probability must lie strictly inside (0, 1). The distribution is not
// required to sum to 1. ValidateProbability exposes the same check so input
// collectors can reject values at entry time with the same error kind.
//
// For raw data, Estimator derives the distribution from byte frequencies, and
// AnalyzeBytes pairs that estimate with compression ratios from the compress
// package: low entropy and good compression both indicate redundancy.
package entropy
