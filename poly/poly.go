// Package poly implements an immutable univariate polynomial over float64
// coefficients, together with its arithmetic.
//
// A Polynomial stores its coefficients in the monomial basis, from the
// constant term to the highest degree term. Every operation returns a new
// Polynomial and never writes into its operands, so a Polynomial can be
// shared freely between goroutines.
package poly

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tuneinsight/polyops/utils/structs"
	"github.com/zeebo/blake3"
)

// Polynomial is a univariate polynomial given by its dense coefficient vector,
// where the i-th coefficient is the one of the degree-i term.
// A Polynomial built by New always has at least one coefficient; the zero
// value has none and is rejected with ErrInvalidArgument by the operations.
type Polynomial struct {
	coeffs structs.Vector[float64]
}

// New creates a new Polynomial from a copy of coeffs.
// Returns ErrNilInput if coeffs is nil and ErrInvalidArgument if coeffs is empty.
func New(coeffs []float64) (*Polynomial, error) {

	if coeffs == nil {
		return nil, fmt.Errorf("cannot New: coeffs: %w", ErrNilInput)
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot New: coeffs must have at least one element: %w", ErrInvalidArgument)
	}

	return newPolynomial(structs.Vector[float64](coeffs).CopyNew()), nil
}

// newPolynomial wraps coeffs without copying it; the caller hands over ownership.
func newPolynomial(coeffs structs.Vector[float64]) *Polynomial {
	return &Polynomial{coeffs: coeffs}
}

// Coefficients returns a newly allocated slice with the coefficients of p,
// ordered from the constant term to the highest degree term.
func (p *Polynomial) Coefficients() []float64 {
	return p.coeffs.CopyNew()
}

// Coefficient returns the coefficient of the degree-i term of p, which is
// zero for any i greater than p.Degree().
func (p *Polynomial) Coefficient(i int) float64 {
	if i < 0 {
		panic(fmt.Errorf("cannot Coefficient: negative degree %d", i))
	}
	if i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Len returns the number of coefficients of p.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree of the polynomial.
// Trailing zero coefficients are counted: the degree of [1 2 0] is 2.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return newPolynomial(p.coeffs.CopyNew())
}

// Equal returns true if p and other have the same number of coefficients
// and their coefficients are equal bit-for-bit: -0 and +0 differ, and two
// NaN with the same encoding are equal.
// Returns ErrNilInput if p or other is nil, and ErrInvalidArgument if either
// is a zero-value Polynomial.
func (p *Polynomial) Equal(other *Polynomial) (bool, error) {

	if err := checkOperands(p, other); err != nil {
		return false, fmt.Errorf("cannot Equal: %w", err)
	}

	if p == other {
		return true, nil
	}

	return p.coeffs.Equal(other.coeffs), nil
}

// SameInstance returns true if p and other point to the same Polynomial.
// Two nil pointers are the same instance.
func (p *Polynomial) SameInstance(other *Polynomial) bool {
	return p == other
}

// SameInstance returns true if a and b point to the same Polynomial.
func SameInstance(a, b *Polynomial) bool {
	return a.SameInstance(b)
}

// Hash returns a 64-bit digest of p that is equal for any two polynomials
// for which Equal returns true. Since equality is bitwise, [0] and [-0]
// hash differently. Like the other accessors, Hash panics on a nil receiver.
func (p *Polynomial) Hash() uint64 {

	hasher := blake3.New()

	buf := make([]byte, 8*(len(p.coeffs)+1))
	binary.LittleEndian.PutUint64(buf, uint64(len(p.coeffs)))
	for i, c := range p.coeffs {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], math.Float64bits(c))
	}

	// blake3.Hasher.Write never returns an error.
	_, _ = hasher.Write(buf)

	return binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
}

// String returns the coefficients of p formatted as with the %v verb,
// separated by single spaces, from the constant term upward.
// For example [1.2 0.12 3] is rendered as "1.2 0.12 3".
func (p *Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p.coeffs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	return sb.String()
}
