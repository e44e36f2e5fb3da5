package poly

import (
	"fmt"

	"github.com/tuneinsight/polyops/utils"
	"github.com/tuneinsight/polyops/utils/structs"
)

// Add returns a + b.
// The result has max(a.Len(), b.Len()) coefficients: the high degree
// coefficients of the longer operand are carried over unchanged.
func Add(a, b *Polynomial) (*Polynomial, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}
	return combine(a, b, false), nil
}

// Sub returns a - b.
// The result has max(a.Len(), b.Len()) coefficients and trailing zero
// coefficients are kept: [1 2 3] - [1 2] = [0 0 3].
func Sub(a, b *Polynomial) (*Polynomial, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot Sub: %w", err)
	}
	return combine(a, b, true), nil
}

// Neg returns -p.
func Neg(p *Polynomial) (*Polynomial, error) {
	return MulScalar(p, -1)
}

// MulScalar returns c * p.
func MulScalar(p *Polynomial, c float64) (*Polynomial, error) {

	if err := checkPolynomial(p); err != nil {
		return nil, fmt.Errorf("cannot MulScalar: %w", err)
	}

	coeffs := make(structs.Vector[float64], len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = c * p.coeffs[i]
	}

	return newPolynomial(coeffs), nil
}

// Mul returns a * b, computed by convolution of the coefficient vectors:
// the coefficient of degree k is the sum of a[i] * b[j] over all i+j = k.
// The result has a.Len() + b.Len() - 1 coefficients.
// The first product landing on a degree is assigned rather than added to
// zero, so that [-0] * [1] = [-0].
func Mul(a, b *Polynomial) (*Polynomial, error) {

	if err := checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	coeffs := make(structs.Vector[float64], len(a.coeffs)+len(b.coeffs)-1)

	last := len(b.coeffs) - 1

	for i, ai := range a.coeffs {
		for j, bj := range b.coeffs {
			if i == 0 || j == last {
				coeffs[i+j] = ai * bj
			} else {
				coeffs[i+j] += ai * bj
			}
		}
	}

	return newPolynomial(coeffs), nil
}

func checkOperands(a, b *Polynomial) error {
	if err := checkPolynomial(a); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	if err := checkPolynomial(b); err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	return nil
}

// checkPolynomial rejects nil pointers and zero-value Polynomial, which
// have no coefficient.
func checkPolynomial(p *Polynomial) error {
	if p == nil {
		return ErrNilInput
	}
	if len(p.coeffs) == 0 {
		return fmt.Errorf("polynomial has no coefficient: %w", ErrInvalidArgument)
	}
	return nil
}

// combine returns a + b, or a - b if negate is set.
// Coefficients past the end of the shorter operand are copied as is
// (negated when they come from b and negate is set), not added to a zero.
func combine(a, b *Polynomial, negate bool) *Polynomial {

	coeffs := make(structs.Vector[float64], utils.Max(len(a.coeffs), len(b.coeffs)))

	for i := range coeffs {

		var bi float64
		if i < len(b.coeffs) {
			if bi = b.coeffs[i]; negate {
				bi = -bi
			}
		}

		switch {
		case i < len(a.coeffs) && i < len(b.coeffs):
			coeffs[i] = a.coeffs[i] + bi
		case i < len(a.coeffs):
			coeffs[i] = a.coeffs[i]
		default:
			coeffs[i] = bi
		}
	}

	return newPolynomial(coeffs)
}
