package view

import (
	"cmp"
	"fmt"
)

// Comparisons are defined between views whose shapes agree in every
// dimension; read-only and mutable views over the same array shape compare
// freely. They are package functions rather than methods because equality
// needs comparable elements and ordering needs ordered ones, which a method
// on View[T any] cannot require.

// Equal reports whether x and y hold element-wise equal contents. Views of
// disagreeing shapes compare unequal. Equality recurses per rank: rank 1
// compares elements across the extent, higher ranks compare sub-view by
// sub-view.
func Equal[T comparable](x, y View[T]) bool {
	if !x.shape.Equal(y.shape) {
		return false
	}
	return equal(x, y)
}

func equal[T comparable](x, y View[T]) bool {
	if x.Rank() <= 1 {
		for i := range x.data {
			if x.data[i] != y.data[i] {
				return false
			}
		}
		return true
	}
	for i := 0; i < x.Extent(); i++ {
		if !equal(x.Sub(i), y.Sub(i)) {
			return false
		}
	}
	return true
}

// EqualArray reports whether the view's contents equal those of a raw array
// of the same shape, given as a value or a pointer. A scalar-type or shape
// disagreement compares unequal.
func EqualArray[T comparable](x View[T], arr any) bool {
	y, err := bindAny[T](arr)
	if err != nil {
		return false
	}
	return Equal(x, y)
}

// Compare orders x and y lexicographically over their flattened element
// sequences, returning -1, 0 or +1 in the manner of slices.Compare. Rank 1
// compares the two equal-length sequences directly; higher ranks compare
// sub-view by sub-view, short-circuiting on the first one that differs.
//
// Ordering between views of disagreeing shapes has no meaning; Compare
// panics on a shape mismatch.
func Compare[T cmp.Ordered](x, y View[T]) int {
	if !x.shape.Equal(y.shape) {
		panic(fmt.Sprintf("view: comparing shapes %v and %v", x.shape, y.shape))
	}
	return compare(x, y)
}

func compare[T cmp.Ordered](x, y View[T]) int {
	if x.Rank() <= 1 {
		for i := range x.data {
			if c := cmp.Compare(x.data[i], y.data[i]); c != 0 {
				return c
			}
		}
		return 0
	}
	for i := 0; i < x.Extent(); i++ {
		if c := compare(x.Sub(i), y.Sub(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether x orders before y under Compare.
func Less[T cmp.Ordered](x, y View[T]) bool {
	return Compare(x, y) < 0
}
