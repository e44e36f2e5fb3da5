package poly

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyops/utils"
	"github.com/tuneinsight/polyops/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

var testCoefficients = [][]float64{
	{0},
	{1},
	{1, 2, 3},
	{1.2, 0.12, 3},
	{-1, 0, 0, 4.5},
	{0, 0, 0},
}

func testString(opname string, coeffs []float64) string {
	return fmt.Sprintf("%s/Len=%d", opname, len(coeffs))
}

func newTestPolynomial(t *testing.T, coeffs ...float64) *Polynomial {
	p, err := New(coeffs)
	require.NoError(t, err)
	return p
}

func TestPolynomial(t *testing.T) {

	for _, coeffs := range testCoefficients {
		testNew(t, coeffs)
		testClone(t, coeffs)
		testEqual(t, coeffs)
		testHash(t, coeffs)
	}

	testNewErrors(t)
	testHashSignedZero(t)
	testSameInstance(t)
	testStringer(t)
	testCoefficient(t)
	testEvaluate(t)
	testZeroValue(t)
}

func testNew(t *testing.T, coeffs []float64) {
	t.Run(testString("New/RoundTrip", coeffs), func(t *testing.T) {

		in := utils.CopyNew(coeffs)

		p, err := New(in)
		require.NoError(t, err)
		require.Equal(t, len(coeffs), p.Len())
		require.Equal(t, len(coeffs)-1, p.Degree())
		require.True(t, cmp.Equal(coeffs, p.Coefficients()))

		// Mutating the input after construction does not leak into p.
		in[0] = 42
		require.True(t, cmp.Equal(coeffs, p.Coefficients()))

		// Every call returns a fresh slice.
		c0 := p.Coefficients()
		c1 := p.Coefficients()
		require.False(t, utils.Alias1D(c0, c1))
		require.False(t, utils.Alias1D(c0, []float64(p.coeffs)))

		c0[0] = 42
		require.True(t, cmp.Equal(coeffs, p.Coefficients()))
	})
}

func testNewErrors(t *testing.T) {
	t.Run("New/Nil", func(t *testing.T) {
		p, err := New(nil)
		require.ErrorIs(t, err, ErrNilInput)
		require.Nil(t, p)
	})

	t.Run("New/Empty", func(t *testing.T) {
		p, err := New([]float64{})
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.NotErrorIs(t, err, ErrNilInput)
		require.Nil(t, p)
	})
}

func testClone(t *testing.T, coeffs []float64) {
	t.Run(testString("Clone", coeffs), func(t *testing.T) {

		p := newTestPolynomial(t, coeffs...)
		q := p.Clone()

		isEqual, err := p.Equal(q)
		require.NoError(t, err)
		require.True(t, isEqual)

		require.False(t, p.SameInstance(q))
		require.False(t, utils.Alias1D(p.coeffs, q.coeffs))
	})
}

func testEqual(t *testing.T, coeffs []float64) {
	t.Run(testString("Equal", coeffs), func(t *testing.T) {

		p := newTestPolynomial(t, coeffs...)

		isEqual, err := p.Equal(p)
		require.NoError(t, err)
		require.True(t, isEqual)

		isEqual, err = p.Equal(newTestPolynomial(t, coeffs...))
		require.NoError(t, err)
		require.True(t, isEqual)

		other := utils.CopyNew(coeffs)
		other[len(other)-1] += 1
		isEqual, err = p.Equal(newTestPolynomial(t, other...))
		require.NoError(t, err)
		require.False(t, isEqual)

		// Trailing zeros are part of the value.
		isEqual, err = p.Equal(newTestPolynomial(t, append(utils.CopyNew(coeffs), 0)...))
		require.NoError(t, err)
		require.False(t, isEqual)

		_, err = p.Equal(nil)
		require.ErrorIs(t, err, ErrNilInput)

		var nilPoly *Polynomial
		_, err = nilPoly.Equal(p)
		require.ErrorIs(t, err, ErrNilInput)
	})
}

func testHash(t *testing.T, coeffs []float64) {
	t.Run(testString("Hash", coeffs), func(t *testing.T) {
		p := newTestPolynomial(t, coeffs...)
		require.Equal(t, p.Hash(), newTestPolynomial(t, coeffs...).Hash())
		require.Equal(t, p.Hash(), p.Clone().Hash())
		require.NotEqual(t, p.Hash(), newTestPolynomial(t, append(utils.CopyNew(coeffs), 0)...).Hash())
	})
}

func testHashSignedZero(t *testing.T) {
	t.Run("Hash/SignedZero", func(t *testing.T) {
		pos := newTestPolynomial(t, 0)
		neg := newTestPolynomial(t, math.Copysign(0, -1))

		isEqual, err := pos.Equal(neg)
		require.NoError(t, err)
		require.False(t, isEqual)
		require.NotEqual(t, pos.Hash(), neg.Hash())

		var nilPoly *Polynomial
		require.Panics(t, func() { nilPoly.Hash() })
	})
}

func testSameInstance(t *testing.T) {
	t.Run("SameInstance", func(t *testing.T) {

		p := newTestPolynomial(t, 1, 2, 3)
		q := p

		require.True(t, p.SameInstance(q))
		require.True(t, SameInstance(p, q))

		r := newTestPolynomial(t, 1, 2, 3)
		isEqual, err := p.Equal(r)
		require.NoError(t, err)
		require.True(t, isEqual)
		require.False(t, p.SameInstance(r))
		require.False(t, SameInstance(p, r))

		require.False(t, p.SameInstance(nil))
		require.False(t, SameInstance(nil, p))
		require.True(t, SameInstance(nil, nil))
	})

	t.Run("Equal/SignedZero", func(t *testing.T) {
		isEqual, err := newTestPolynomial(t, 0).Equal(newTestPolynomial(t, math.Copysign(0, -1)))
		require.NoError(t, err)
		require.False(t, isEqual)
	})
}

func testStringer(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		require.Equal(t, "1.2 0.12 3", newTestPolynomial(t, 1.2, 0.12, 3).String())
		require.Equal(t, "0", newTestPolynomial(t, 0).String())
		require.Equal(t, "-1 0 2.5", newTestPolynomial(t, -1, 0, 2.5).String())
		require.Equal(t, "1e+21 1e-07", newTestPolynomial(t, 1e21, 1e-7).String())
		require.Equal(t, "1.2 0.12 3", fmt.Sprint(newTestPolynomial(t, 1.2, 0.12, 3)))
	})
}

func testCoefficient(t *testing.T) {
	t.Run("Coefficient", func(t *testing.T) {
		p := newTestPolynomial(t, 1, 2, 3)
		require.Equal(t, 1.0, p.Coefficient(0))
		require.Equal(t, 3.0, p.Coefficient(2))
		require.Equal(t, 0.0, p.Coefficient(3))
		require.Panics(t, func() { p.Coefficient(-1) })
	})
}

func testEvaluate(t *testing.T) {
	t.Run("Evaluate", func(t *testing.T) {
		p := newTestPolynomial(t, 1, 2, 3)
		require.Equal(t, 1.0, p.Evaluate(0))
		require.Equal(t, 6.0, p.Evaluate(1))
		require.Equal(t, 17.0, p.Evaluate(2))
		require.Equal(t, 2.0, p.Evaluate(-1))
	})

	t.Run("EvaluateBig", func(t *testing.T) {
		p := newTestPolynomial(t, 1, 2, 3)

		x := new(big.Float).SetPrec(256).SetFloat64(2)
		y := p.EvaluateBig(x)
		require.Equal(t, uint(256), y.Prec())

		f, _ := y.Float64()
		require.Equal(t, 17.0, f)

		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)
		q, err := NewRandom(prng, 8, -1, 1)
		require.NoError(t, err)

		for _, xf := range []float64{-0.5, 0.25, 0.75} {
			yf, _ := q.EvaluateBig(big.NewFloat(xf)).Float64()
			require.InDelta(t, q.Evaluate(xf), yf, 1e-12)
		}
	})
}

func testZeroValue(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {

		zero := new(Polynomial)
		p := newTestPolynomial(t, 1, 2)

		for name, op := range map[string]func(a, b *Polynomial) (*Polynomial, error){
			"Add": Add,
			"Sub": Sub,
			"Mul": Mul,
		} {
			r, err := op(zero, zero)
			require.ErrorIs(t, err, ErrInvalidArgument, name)
			require.Nil(t, r)

			_, err = op(p, zero)
			require.ErrorIs(t, err, ErrInvalidArgument, name)

			_, err = op(zero, p)
			require.ErrorIs(t, err, ErrInvalidArgument, name)
		}

		_, err := zero.Equal(p)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = p.Equal(zero)
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = MulScalar(zero, 2)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = Neg(zero)
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = GetPrecisionStats(zero, p)
		require.ErrorIs(t, err, ErrInvalidArgument)

		require.Equal(t, 0.0, zero.Evaluate(1))
		require.Equal(t, 0, zero.EvaluateBig(big.NewFloat(1)).Sign())
	})
}
