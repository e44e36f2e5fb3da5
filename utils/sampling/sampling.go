// Package sampling implements sampling of random bytes and floating point values.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RandUint64 reads a uniform value between 0 and 0xFFFFFFFFFFFFFFFF from prng.
func RandUint64(prng PRNG) (uint64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RandFloat64 returns a random float in [min, max) read from prng.
// Returns an error if max-min is not a finite positive value.
func RandFloat64(prng PRNG, min, max float64) (float64, error) {

	width := max - min
	if !(width > 0) || math.IsInf(width, 1) {
		return 0, fmt.Errorf("cannot RandFloat64: invalid range [%v, %v)", min, max)
	}

	u, err := RandUint64(prng)
	if err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}

	// 53 random bits map exactly onto the float64 mantissa, so f < 1.
	f := float64(u>>11) / (1 << 53)

	// min + f*width can still round up to max.
	r := min + f*width
	if r >= max {
		r = math.Nextafter(max, min)
	}

	return r, nil
}
