// Package utils implements generic helper functions shared by the interpkit
// packages.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value in s, or the zero value of T when s is
// empty.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	if len(s) == 0 {
		return
	}
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return
}

// MinSlice returns the minimum value in s, or the zero value of T when s is
// empty.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	if len(s) == 0 {
		return
	}
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}
