// Package interp implements polynomial interpolation in Newton form: a
// divided-difference coefficient generator and a nested-multiplication
// evaluator, both generic over the binary floating-point precisions, along
// with a stateful [Interpolator] for incremental point-by-point construction.
package interp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyInput is returned by [Coefficients] when no sample points are supplied.
	ErrEmptyInput = errors.New("empty input")

	// ErrCoincidentAbscissae is returned by [Coefficients] when two abscissae
	// compare exactly equal. The check is exact: abscissae that differ by any
	// nonzero amount are accepted. Tolerance-based merging belongs to the
	// caller, see [Interpolator.SetMergeThreshold].
	ErrCoincidentAbscissae = errors.New("coincident abscissae")

	// ErrEmptyPolynomial is returned by [Evaluate] when the coefficient and
	// abscissa vectors are empty.
	ErrEmptyPolynomial = errors.New("empty polynomial")
)

// Coefficients computes the Newton divided-difference coefficients of the
// polynomial of degree at most n-1 that interpolates y[i] at x[i] for all i.
// The returned vector is index-aligned with x and is only meaningful together
// with the exact abscissa sequence (including order) it was derived from;
// both are consumed by [Evaluate].
//
// Coefficients panics if len(x) != len(y).
func Coefficients[T constraints.Float](x, y []T) (c []T, err error) {
	c = make([]T, len(y))
	if err = CoefficientsInto(x, y, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CoefficientsInto is an allocation-free variant of [Coefficients] writing the
// coefficients into the caller-owned slice c. On failure c is left in a
// partially written state and must not be read.
//
// CoefficientsInto panics if len(x), len(y) and len(c) are not all equal.
func CoefficientsInto[T constraints.Float](x, y, c []T) (err error) {

	if len(x) != len(y) || len(y) != len(c) {
		panic(fmt.Errorf("cannot CoefficientsInto: len(x)=%d, len(y)=%d and len(c)=%d must be equal", len(x), len(y), len(c)))
	}

	n := len(x)

	if n == 0 {
		return fmt.Errorf("cannot CoefficientsInto: %w", ErrEmptyInput)
	}

	c[0] = y[0]

	// c[k] = f[x[0],...,x[k]], the k-th order divided difference.
	for k := 1; k < n; k++ {
		c[k] = y[k]
		for i := 0; i < k; i++ {
			dif := x[i] - x[k]
			if dif == 0 {
				return fmt.Errorf("cannot CoefficientsInto: %w: x[%d] == x[%d]", ErrCoincidentAbscissae, i, k)
			}
			c[k] = (c[i] - c[k]) / dif
		}
	}

	return nil
}

// Evaluate computes the value at xx of the polynomial in Newton form
//
//	c[0] + c[1]*(xx-x[0]) + c[2]*(xx-x[0])*(xx-x[1]) + ...
//
// by nested multiplication, where x and c are the abscissae and coefficients
// of a previous [Coefficients] call. Neither x nor c may be altered or
// reordered between the two calls. The polynomial is evaluated as an ordinary
// polynomial for any xx, inside or outside the span of x: extrapolation is
// unrestricted. No distinctness check is performed on x; that check happened
// at generation time.
//
// Evaluate panics if len(x) != len(c).
func Evaluate[T constraints.Float](xx T, x, c []T) (yy T, err error) {

	if len(x) != len(c) {
		panic(fmt.Errorf("cannot Evaluate: len(x)=%d and len(c)=%d must be equal", len(x), len(c)))
	}

	n := len(c)

	if n == 0 {
		return 0, fmt.Errorf("cannot Evaluate: %w", ErrEmptyPolynomial)
	}

	pi := T(1)
	p := c[0]
	for k := 1; k < n; k++ {
		pi *= xx - x[k-1]
		p += pi * c[k]
	}

	return p, nil
}
