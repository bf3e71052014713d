package interp

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Interpolator is a stateful wrapper around [Coefficients] and [Evaluate]
// supporting incremental point-by-point construction of an interpolating
// polynomial. Points accrue through [Interpolator.Insert], which keeps the
// abscissae sorted in ascending order and merges points whose abscissae are
// closer than a configurable threshold. The interpolation order is exactly
// the number of (merged) points held.
//
// An Interpolator is not safe for concurrent use: it assumes exclusive
// ownership by one caller at a time and performs no internal locking.
type Interpolator[T constraints.Float] struct {
	tau T

	// Four co-indexed columns. Insertions grow all four together; Go slice
	// growth cannot fail partway, so a slot is either fully present or absent.
	x, y, c []T
	n       []uint64

	stale bool
}

// NewInterpolator returns an empty Interpolator with a merge threshold of
// zero, under which only exactly equal abscissae merge.
func NewInterpolator[T constraints.Float]() *Interpolator[T] {
	return &Interpolator[T]{}
}

// SetMergeThreshold sets the minimum abscissa separation below which an
// inserted point merges into an existing one instead of occupying a new slot.
// A negative tau leaves the current threshold unchanged.
func (itp *Interpolator[T]) SetMergeThreshold(tau T) {
	if tau >= 0 {
		itp.tau = tau
	}
}

// MergeThreshold returns the current merge threshold.
func (itp *Interpolator[T]) MergeThreshold() T {
	return itp.tau
}

// Insert adds the point (x, y). If x falls within the merge threshold of a
// stored abscissa, the point merges into that slot at the running arithmetic
// mean of all points merged there so far; the left neighbor is preferred when
// both qualify. Otherwise the point occupies a new slot at its sorted
// position. Insertion invalidates previously generated coefficients:
// [Interpolator.Interpolate] must run again before evaluation reflects the
// new point.
func (itp *Interpolator[T]) Insert(x, y T) {

	// First slot with abscissa >= x.
	i := 0
	for i < len(itp.x) && itp.x[i] < x {
		i++
	}

	switch {
	case i > 0 && x-itp.x[i-1] <= itp.tau:
		itp.merge(i-1, x, y)
	case i < len(itp.x) && itp.x[i]-x <= itp.tau:
		itp.merge(i, x, y)
	default:
		itp.x = slices.Insert(itp.x, i, x)
		itp.y = slices.Insert(itp.y, i, y)
		itp.c = slices.Insert(itp.c, i, 0)
		itp.n = slices.Insert(itp.n, i, 1)
	}

	itp.stale = true
}

// merge folds (x, y) into slot i as a running mean weighted by the number of
// points already merged there. The merged abscissa lies between the slot's
// old abscissa and x, so the column stays sorted.
func (itp *Interpolator[T]) merge(i int, x, y T) {
	w := T(itp.n[i])
	itp.x[i] = (x + itp.x[i]*w) / (w + 1)
	itp.y[i] = (y + itp.y[i]*w) / (w + 1)
	itp.n[i]++
}

// Interpolate (re)generates the coefficient vector from the current points.
// It must be called after the last [Interpolator.Insert] and before
// [Interpolator.Evaluate]. On failure the coefficients are left in an
// undefined state and must not be used for evaluation until a successful
// rerun; [ErrCoincidentAbscissae] can still occur with a zero merge threshold
// when two inserted abscissae coincide exactly.
func (itp *Interpolator[T]) Interpolate() (err error) {
	if err = CoefficientsInto(itp.x, itp.y, itp.c); err != nil {
		return err
	}
	itp.stale = false
	return nil
}

// Evaluate returns the value of the interpolating polynomial at x. On an
// empty Interpolator it returns x unchanged. If points were inserted since
// the last successful [Interpolator.Interpolate], the result is silently
// based on the previous coefficients; use [Interpolator.Stale] to detect
// this.
func (itp *Interpolator[T]) Evaluate(x T) (y T) {
	if len(itp.n) == 0 {
		return x
	}
	y, _ = Evaluate(x, itp.x, itp.c) // cannot fail for a non-zero point count
	return y
}

// Stale reports whether points were inserted since the last successful
// [Interpolator.Interpolate].
func (itp *Interpolator[T]) Stale() bool {
	return itp.stale
}

// Point is a stored, possibly merged, sample point.
type Point[T constraints.Float] struct {
	X, Y T
	N    uint64 // number of original points merged into this slot
}

// Points returns a copy of the stored points in ascending abscissa order.
func (itp *Interpolator[T]) Points() (points []Point[T]) {
	points = make([]Point[T], len(itp.n))
	for i := range points {
		points[i] = Point[T]{X: itp.x[i], Y: itp.y[i], N: itp.n[i]}
	}
	return
}

// Size returns the number of distinct (merged) points currently held.
func (itp *Interpolator[T]) Size() int {
	return len(itp.n)
}

// Clear empties the Interpolator. Evaluation reverts to the identity
// fallback; the merge threshold is retained.
func (itp *Interpolator[T]) Clear() {
	itp.x = itp.x[:0]
	itp.y = itp.y[:0]
	itp.c = itp.c[:0]
	itp.n = itp.n[:0]
	itp.stale = false
}
