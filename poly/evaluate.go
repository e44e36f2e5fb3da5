package poly

import (
	"math/big"
)

// Evaluate returns p(x), computed with Horner's scheme.
// A zero-value Polynomial evaluates to 0.
func (p *Polynomial) Evaluate(x float64) (y float64) {

	n := len(p.coeffs)
	if n == 0 {
		return 0
	}

	y = p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return
}

// EvaluateBig returns p(x), computed with Horner's scheme in arbitrary
// precision. The precision of x is used as reference precision for y.
// The coefficients themselves remain the float64 values of p.
// A zero-value Polynomial evaluates to 0.
// Panics if a coefficient is NaN, as big.Float cannot represent it.
func (p *Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {

	prec := x.Prec()

	n := len(p.coeffs)
	if n == 0 {
		return new(big.Float).SetPrec(prec)
	}

	c := new(big.Float).SetPrec(prec)

	y = new(big.Float).SetPrec(prec).SetFloat64(p.coeffs[n-1])
	for i := n - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, c.SetFloat64(p.coeffs[i]))
	}

	return
}
