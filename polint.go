/*
Package polint is a polynomial interpolation library. It computes the
polynomial through a set of sample points with Newton's divided-difference
method and evaluates it at arbitrary query points by nested multiplication,
following the classical SLATEC POLINT/POLYVL pair. The interp package holds
the generic floating-point kernels and an incremental interpolator with
near-duplicate merging; the bignum package holds the same kernels over
arbitrary-precision floats.
*/
package polint
