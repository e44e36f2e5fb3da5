// Package utils implements generic helpers shared by the other packages of this module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Max returns the largest of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// CopyNew returns a copy of s backed by a newly allocated array.
// A nil slice is returned as nil.
func CopyNew[V any](s []V) (scpy []V) {
	if s == nil {
		return nil
	}
	scpy = make([]V, len(s))
	copy(scpy, s)
	return
}
