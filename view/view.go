// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"cmp"
	"reflect"

	"github.com/ndview/ndview/internal/view"
)

// Type aliases for public API

// View is a non-owning handle over a fixed-shape multidimensional array
// with scalar element type T.
//
// Example:
//
//	var a [2][3]float64
//	v := view.MustBind[float64](&a)
//	v.Set(1.5, 0, 2) // a[0][2] = 1.5
type View[T any] = view.View[T]

// Shape holds per-dimension extents, outermost first.
// Example: Shape{2, 3, 4} describes a [2][3][4] array.
type Shape = view.Shape

// Sentinel errors reported by binding, checked access and bulk operations.
var (
	ErrNotArray        = view.ErrNotArray
	ErrNotArrayPointer = view.ErrNotArrayPointer
	ErrElementType     = view.ErrElementType
	ErrZeroExtent      = view.ErrZeroExtent
	ErrShapeMismatch   = view.ErrShapeMismatch
	ErrLength          = view.ErrLength
	ErrIndexRange      = view.ErrIndexRange
	ErrReadOnly        = view.ErrReadOnly
)

// Construction functions

// Bind constructs a mutable view over the array *arrPtr. arrPtr must be a
// non-nil pointer to a fixed-size array of any rank whose scalar element
// type is exactly T and whose every extent is positive.
//
// Example:
//
//	var a [3][4]int
//	v, err := view.Bind[int](&a)
func Bind[T any](arrPtr any) (View[T], error) {
	return view.Bind[T](arrPtr)
}

// BindRO constructs a read-only view over the array *arrPtr. The view
// aliases the array but exposes no mutating surface.
func BindRO[T any](arrPtr any) (View[T], error) {
	return view.BindRO[T](arrPtr)
}

// MustBind is Bind, panicking on error.
func MustBind[T any](arrPtr any) View[T] {
	return view.MustBind[T](arrPtr)
}

// MustBindRO is BindRO, panicking on error.
func MustBindRO[T any](arrPtr any) View[T] {
	return view.MustBindRO[T](arrPtr)
}

// Wrap binds an existing flat slice as a view of the given shape. The
// slice is aliased, not copied; its length must equal shape.NumElements().
//
// Example:
//
//	data := make([]float32, 6)
//	v, err := view.Wrap(data, view.Shape{2, 3})
func Wrap[T any](data []T, shape Shape) (View[T], error) {
	return view.Wrap(data, shape)
}

// OfString returns a read-only rank-1 byte view over the storage of s,
// without copying.
func OfString(s string) View[byte] {
	return view.OfString(s)
}

// ShapeOf decomposes a nested Go array type into its extents and scalar
// element type.
func ShapeOf(t reflect.Type) (Shape, reflect.Type, error) {
	return view.ShapeOf(t)
}

// Comparison and swap functions

// Equal reports whether x and y hold element-wise equal contents; views of
// disagreeing shapes compare unequal.
func Equal[T comparable](x, y View[T]) bool {
	return view.Equal(x, y)
}

// EqualArray reports whether the view's contents equal those of a raw
// array of the same shape, given as a value or a pointer.
func EqualArray[T comparable](x View[T], arr any) bool {
	return view.EqualArray(x, arr)
}

// Compare orders x and y lexicographically over their flattened element
// sequences, returning -1, 0 or +1. It panics on a shape mismatch.
func Compare[T cmp.Ordered](x, y View[T]) int {
	return view.Compare(x, y)
}

// Less reports whether x orders before y under Compare.
func Less[T cmp.Ordered](x, y View[T]) bool {
	return view.Less(x, y)
}

// SwapViews exchanges which storage the two views refer to, without
// touching any element. See View.SwapData for the deep form.
func SwapViews[T any](a, b *View[T]) {
	view.SwapViews(a, b)
}
