// Package hash fingerprints numeric samples so log lines from one
// computation can be correlated without logging the values themselves.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sample computes the xxHash64 of one or more float64 series.
//
// Each series is prefixed with its length, so ([1,2],[3]) and ([1],[2,3])
// hash differently. -0 and +0 hash differently as well, since the raw IEEE
// bits are used.
func Sample(series ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
