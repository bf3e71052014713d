package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/numericalgo/polint/utils/sampling"
)

func TestCoefficients(t *testing.T) {

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := Coefficients([]float64{}, []float64{})
		require.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("CoincidentAbscissae", func(t *testing.T) {
		_, err := Coefficients([]float64{1, 1}, []float64{2, 3})
		require.ErrorIs(t, err, ErrCoincidentAbscissae)
	})

	t.Run("NearCoincidentAccepted", func(t *testing.T) {
		// Exact-equality check only: any nonzero separation is accepted.
		_, err := Coefficients([]float64{1, 1 + 1e-15}, []float64{2, 3})
		require.NoError(t, err)
	})

	t.Run("Constant/float64", testConstant[float64])
	t.Run("Constant/float32", testConstant[float32])

	t.Run("Linear/float64", testLinear[float64])
	t.Run("Linear/float32", testLinear[float32])

	t.Run("LengthMismatchPanics", func(t *testing.T) {
		require.Panics(t, func() {
			_, _ = Coefficients([]float64{1, 2}, []float64{1})
		})
	})
}

func testConstant[T constraints.Float](t *testing.T) {
	c, err := Coefficients([]T{3}, []T{7})
	require.NoError(t, err)
	require.Equal(t, []T{7}, c)

	for _, xx := range []T{-100, 0, 3, 1e6} {
		y, err := Evaluate(xx, []T{3}, c)
		require.NoError(t, err)
		require.Equal(t, T(7), y)
	}
}

func testLinear[T constraints.Float](t *testing.T) {
	x := []T{0, 1}
	c, err := Coefficients(x, []T{0, 1})
	require.NoError(t, err)

	y, err := Evaluate(T(0.5), x, c)
	require.NoError(t, err)
	require.InDelta(t, 0.5, float64(y), 1e-6)

	// Extrapolation is unrestricted.
	y, err = Evaluate(T(2), x, c)
	require.NoError(t, err)
	require.InDelta(t, 2, float64(y), 1e-6)
}

func TestEvaluate(t *testing.T) {

	t.Run("EmptyPolynomial", func(t *testing.T) {
		_, err := Evaluate(1.0, nil, nil)
		require.ErrorIs(t, err, ErrEmptyPolynomial)
	})

	t.Run("LengthMismatchPanics", func(t *testing.T) {
		require.Panics(t, func() {
			_, _ = Evaluate(1.0, []float64{1, 2}, []float64{1})
		})
	})
}

func TestExactness(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("exactness"))
	require.NoError(t, err)

	// Well-separated jittered nodes keep the divided differences stable.
	n := 8
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) + sampling.RandFloat64(prng, -0.4, 0.4)
		y[i] = sampling.RandFloat64(prng, -1, 1)
	}

	c, err := Coefficients(x, y)
	require.NoError(t, err)

	for i := range x {
		yy, err := Evaluate(x[i], x, c)
		require.NoError(t, err)
		require.InDelta(t, y[i], yy, 1e-10)
	}
}

func TestOrderInvariance(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("order"))
	require.NoError(t, err)

	n := 6
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) + sampling.RandFloat64(prng, -0.3, 0.3)
		y[i] = sampling.RandFloat64(prng, -1, 1)
	}

	c, err := Coefficients(x, y)
	require.NoError(t, err)

	// Reversed pair order defines the same polynomial.
	xr := make([]float64, n)
	yr := make([]float64, n)
	for i := range x {
		xr[i] = x[n-1-i]
		yr[i] = y[n-1-i]
	}

	cr, err := Coefficients(xr, yr)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		probe := sampling.RandFloat64(prng, -1, float64(n))
		y0, err := Evaluate(probe, x, c)
		require.NoError(t, err)
		y1, err := Evaluate(probe, xr, cr)
		require.NoError(t, err)
		require.InDelta(t, y0, y1, 1e-9)
	}
}

func TestDegreeBound(t *testing.T) {

	// Four points of y = x^3 on integer abscissae: the divided differences
	// are exact in binary floating-point, and the fourth-order finite
	// difference of the interpolant must vanish on any equispaced probes.
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 8, 27}

	c, err := Coefficients(x, y)
	require.NoError(t, err)

	probes := make([]float64, 9)
	for i := range probes {
		v, err := Evaluate(float64(i)-2, x, c)
		require.NoError(t, err)
		probes[i] = v
	}

	for order := 0; order < 4; order++ {
		for i := 0; i < len(probes)-1; i++ {
			probes[i] = probes[i+1] - probes[i]
		}
		probes = probes[:len(probes)-1]
	}

	for _, d := range probes {
		require.InDelta(t, 0, d, 1e-9)
	}
}
