// Package traits provides stateless queries over array-like types: rank,
// extents, element types and total element counts, working uniformly on
// builtin fixed-size arrays, on view types, and on any other type that opts
// in via the ArrayLike interface.
package traits

import "reflect"

// ArrayLike is the opt-in hook for class types that model a fixed-size
// array. ArrayType returns the builtin array type the value corresponds to,
// e.g. [3][4]int. The view package's View implements it.
type ArrayLike interface {
	ArrayType() reflect.Type
}

// typeOf resolves the type a query operates on: a reflect.Type is used
// as-is, an ArrayLike contributes its corresponding array type, and any
// other value contributes its dynamic type. A nil x yields nil.
func typeOf(x any) reflect.Type {
	switch t := x.(type) {
	case nil:
		return nil
	case reflect.Type:
		return t
	case ArrayLike:
		return t.ArrayType()
	default:
		return reflect.TypeOf(x)
	}
}

// Rank returns the number of array dimensions of x, and 0 when x is not
// array-like.
//
//	traits.Rank([2][3][4]int{}) // 3
//	traits.Rank(7)              // 0
func Rank(x any) int {
	n := 0
	for t := typeOf(x); t != nil && t.Kind() == reflect.Array; t = t.Elem() {
		n++
	}
	return n
}

// Extent returns the size of the outermost dimension of x, and 0 when x is
// not array-like.
func Extent(x any) int {
	if t := typeOf(x); t != nil && t.Kind() == reflect.Array {
		return t.Len()
	}
	return 0
}

// RemoveExtent returns the type of x with its outermost dimension stripped,
// or x's type unchanged when it is not array-like.
//
//	traits.RemoveExtent([2][3]int{}) // [3]int
func RemoveExtent(x any) reflect.Type {
	t := typeOf(x)
	if t != nil && t.Kind() == reflect.Array {
		return t.Elem()
	}
	return t
}

// RemoveAllExtents returns the scalar element type of x after stripping
// every dimension, or x's type unchanged when it is not array-like.
//
//	traits.RemoveAllExtents([2][3]int{}) // int
func RemoveAllExtents(x any) reflect.Type {
	t := typeOf(x)
	for t != nil && t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t
}

// ArraySize returns the total number of scalar elements of x, the product
// of all its extents. A non-array scalar counts 1. A dimension of unknown
// extent anywhere in the nesting (a slice, in Go terms) makes the total 0.
//
//	traits.ArraySize([2][3]int{}) // 6
//	traits.ArraySize(3.14)        // 1
//	traits.ArraySize([][3]int{})  // 0
func ArraySize(x any) int {
	t := typeOf(x)
	n := 1
	for t != nil {
		switch t.Kind() {
		case reflect.Array:
			n *= t.Len()
			t = t.Elem()
		case reflect.Slice:
			return 0
		default:
			return n
		}
	}
	return n
}

// AllSame reports whether every given type is the same type. It holds
// vacuously for zero or one argument.
func AllSame(types ...reflect.Type) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types[1:] {
		if t != types[0] {
			return false
		}
	}
	return true
}

// SameType reports whether every given value has the same dynamic type,
// resolving ArrayLike values to their array types.
func SameType(xs ...any) bool {
	if len(xs) == 0 {
		return true
	}
	types := make([]reflect.Type, len(xs))
	for i, x := range xs {
		types[i] = typeOf(x)
	}
	return AllSame(types...)
}

// Complete reports whether x carries a resolved type at all: false for nil
// and for an invalid reflect.Type, true otherwise. Go types are always
// fully defined once they exist, so this is a narrow escape hatch for
// generic code ported from languages with incomplete types, not a
// general-purpose facility.
func Complete(x any) bool {
	t := typeOf(x)
	return t != nil && t.Kind() != reflect.Invalid
}
