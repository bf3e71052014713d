package bignum

import (
	"fmt"
	"math/big"

	"github.com/numericalgo/polint/interp"
)

// Coefficients computes the Newton divided-difference coefficients of the
// polynomial interpolating y[i] at x[i], at the precision of the operands.
// It is the arbitrary-precision counterpart of [interp.Coefficients] and
// shares its contract: the returned vector is only meaningful together with
// the exact abscissa sequence it was derived from, and abscissae must be
// pairwise distinct under exact comparison.
//
// Coefficients panics if len(x) != len(y).
func Coefficients(x, y []*big.Float) (c []*big.Float, err error) {

	if len(x) != len(y) {
		panic(fmt.Errorf("cannot Coefficients: len(x)=%d and len(y)=%d must be equal", len(x), len(y)))
	}

	n := len(x)

	if n == 0 {
		return nil, fmt.Errorf("cannot Coefficients: %w", interp.ErrEmptyInput)
	}

	c = make([]*big.Float, n)
	c[0] = new(big.Float).Set(y[0])

	dif := new(big.Float)

	for k := 1; k < n; k++ {
		c[k] = new(big.Float).Set(y[k])
		for i := 0; i < k; i++ {
			dif.Sub(x[i], x[k])
			if dif.Sign() == 0 {
				return nil, fmt.Errorf("cannot Coefficients: %w: x[%d] == x[%d]", interp.ErrCoincidentAbscissae, i, k)
			}
			c[k].Sub(c[i], c[k])
			c[k].Quo(c[k], dif)
		}
	}

	return c, nil
}

// Evaluate computes the value at xx of the polynomial in Newton form with
// abscissae x and coefficients c, by nested multiplication at the precision
// of xx. It is the arbitrary-precision counterpart of [interp.Evaluate].
//
// Evaluate panics if len(x) != len(c).
func Evaluate(xx *big.Float, x, c []*big.Float) (yy *big.Float, err error) {

	if len(x) != len(c) {
		panic(fmt.Errorf("cannot Evaluate: len(x)=%d and len(c)=%d must be equal", len(x), len(c)))
	}

	n := len(c)

	if n == 0 {
		return nil, fmt.Errorf("cannot Evaluate: %w", interp.ErrEmptyPolynomial)
	}

	prec := xx.Prec()

	pi := NewFloat(1, prec)
	p := NewFloat(c[0], prec)

	tmp := new(big.Float)

	for k := 1; k < n; k++ {
		tmp.Sub(xx, x[k-1])
		pi.Mul(pi, tmp)
		tmp.Mul(pi, c[k])
		p.Add(p, tmp)
	}

	return p, nil
}
