package view

import (
	"fmt"
	"reflect"
	"strings"
)

// Shape holds the extents of every dimension of a viewed array, outermost
// first. A Shape of length 0 describes a scalar (a rank-0 sub-view).
type Shape []int

// ShapeOf decomposes a (possibly nested) Go array type into its extents and
// its scalar element type. It returns ErrNotArray when t is not an array
// type and ErrZeroExtent when any dimension has extent 0.
func ShapeOf(t reflect.Type) (Shape, reflect.Type, error) {
	if t == nil || t.Kind() != reflect.Array {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotArray, t)
	}
	var s Shape
	for t.Kind() == reflect.Array {
		if t.Len() == 0 {
			return nil, nil, fmt.Errorf("%w: %v", ErrZeroExtent, t)
		}
		s = append(s, t.Len())
		t = t.Elem()
	}
	return s, t, nil
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of scalar elements, the product of
// all extents. A rank-0 shape has exactly one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is positive. A zero-extent dimension
// cannot occur in a bound view; Validate guards the paths that accept a
// caller-supplied Shape.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d has extent %d", ErrZeroExtent, i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes agree in rank and in every extent.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the row-major stride of each dimension, measured in
// scalar elements: strides[i] is the distance between consecutive indices
// along dimension i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// inner returns the shape of one sub-array, i.e. the shape with the
// outermost dimension stripped. The backing array is shared; shapes are
// treated as immutable throughout the package.
func (s Shape) inner() Shape {
	return s[1:]
}

// String renders the shape like the corresponding array type, e.g. "[2][3]".
func (s Shape) String() string {
	var b strings.Builder
	for _, dim := range s {
		fmt.Fprintf(&b, "[%d]", dim)
	}
	return b.String()
}
