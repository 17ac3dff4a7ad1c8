// Package ordering binds the total orders that sorted containers are
// built on. A Compare returns a negative number when a orders before
// b, zero when they are equal and a positive number otherwise. It
// must be a strict total order and must not change over the lifetime
// of a container.
package ordering // import "jsouthworth.net/go/sorted/ordering"

import (
	"golang.org/x/exp/constraints"
	"jsouthworth.net/go/dyn"
)

// Error is the error type of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrNoCompare is the panic value used when a container is created
// without a comparison function.
const ErrNoCompare = Error("a comparison function is required")

// Compare is a three way comparison of two keys.
type Compare[K any] func(a, b K) int

// Natural returns the order given by Go's < operator. NaN orders
// before every other floating point value and equal to itself so the
// order stays total.
func Natural[K constraints.Ordered]() Compare[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		case a == b:
			return 0
		}
		// At least one side is NaN.
		aNaN, bNaN := a != a, b != b
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return -1
		default:
			return 1
		}
	}
}

// Dynamic returns the order defined by dyn.Compare. It supports the
// builtin numeric and string types as well as any type implementing
// Compare(other interface{}) int, which makes it useful for
// heterogeneous keys.
func Dynamic[K any]() Compare[K] {
	return func(a, b K) int {
		return dyn.Compare(a, b)
	}
}

// Reverse returns the inverse of cmp.
func Reverse[K any](cmp Compare[K]) Compare[K] {
	return func(a, b K) int {
		return cmp(b, a)
	}
}

// Then orders by first and breaks ties with second.
func Then[K any](first, second Compare[K]) Compare[K] {
	return func(a, b K) int {
		if c := first(a, b); c != 0 {
			return c
		}
		return second(a, b)
	}
}

// Must returns cmp, panicking with ErrNoCompare if it is nil.
func Must[K any](cmp Compare[K]) Compare[K] {
	if cmp == nil {
		panic(ErrNoCompare)
	}
	return cmp
}
