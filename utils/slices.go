// Package utils implements generic helper functions shared across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// AllDistinct returns true if all elements in s are distinct.
func AllDistinct[V comparable](s []V) bool {
	m := map[V]bool{}
	for _, si := range s {
		if m[si] {
			return false
		}
		m[si] = true
	}
	return true
}

// IsStrictlySorted returns true if s is sorted in strictly ascending order.
func IsStrictlySorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// MinSlice returns the minimum value of the slice, or the zero value on an
// empty slice.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	if len(s) == 0 {
		return
	}
	min = s[0]
	for _, si := range s[1:] {
		if si < min {
			min = si
		}
	}
	return
}

// MaxSlice returns the maximum value of the slice, or the zero value on an
// empty slice.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	if len(s) == 0 {
		return
	}
	max = s[0]
	for _, si := range s[1:] {
		if si > max {
			max = si
		}
	}
	return
}
