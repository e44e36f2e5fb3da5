package poly

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyops/utils/sampling"
	"github.com/tuneinsight/polyops/utils/structs"
)

// NewRandom returns a polynomial with n coefficients drawn uniformly in
// [min, max) from prng. Given a sampling.KeyedPRNG, the result only depends
// on the key and on the bytes already read from the PRNG.
func NewRandom(prng sampling.PRNG, n int, min, max float64) (*Polynomial, error) {

	if prng == nil {
		return nil, fmt.Errorf("cannot NewRandom: prng: %w", ErrNilInput)
	}

	if n < 1 {
		return nil, fmt.Errorf("cannot NewRandom: n=%d must be at least 1: %w", n, ErrInvalidArgument)
	}

	if !(min < max) {
		return nil, fmt.Errorf("cannot NewRandom: min=%v must be smaller than max=%v: %w", min, max, ErrInvalidArgument)
	}

	if math.IsInf(max-min, 1) {
		return nil, fmt.Errorf("cannot NewRandom: range [%v, %v) is too wide: %w", min, max, ErrInvalidArgument)
	}

	coeffs := make(structs.Vector[float64], n)

	var err error
	for i := range coeffs {
		if coeffs[i], err = sampling.RandFloat64(prng, min, max); err != nil {
			return nil, fmt.Errorf("cannot NewRandom: %w", err)
		}
	}

	return newPolynomial(coeffs), nil
}
