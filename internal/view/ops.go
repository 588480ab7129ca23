package view

import (
	"fmt"
	"reflect"
	"unsafe"
)

// The bulk operations mirror the viewed array's hierarchical layout: an
// array of shape [d0 d1 ... dk] is d0 contiguous sub-arrays of shape
// [d1 ... dk], so fill, copy, swap and the comparisons all recurse through
// Sub until rank 1 and only then touch flat storage. Recursion depth equals
// the rank.

// Fill sets every scalar element reachable from the view to value.
// Panics on read-only views.
func (v View[T]) Fill(value T) {
	v.mustWrite()
	v.fill(value)
}

func (v View[T]) fill(value T) {
	if v.Rank() <= 1 {
		for i := range v.data {
			v.data[i] = value
		}
		return
	}
	for i := 0; i < v.Extent(); i++ {
		v.Sub(i).fill(value)
	}
}

// CopyFrom performs a deep, element-wise copy from a raw array of the same
// shape into the viewed storage. arr may be the array value or a pointer to
// it. Afterwards source and destination are independent.
//
// This is the deep counterpart of plain view assignment: `dst = src` on two
// View values only rebinds dst to src's storage.
//
// Errors: ErrElementType when arr's scalar type is not T, ErrShapeMismatch
// when the shapes disagree. Panics on read-only views.
func (v View[T]) CopyFrom(arr any) error {
	v.mustWrite()
	src, err := bindAny[T](arr)
	if err != nil {
		return err
	}
	if !v.shape.Equal(src.shape) {
		return fmt.Errorf("%w: view %v, source %v", ErrShapeMismatch, v.shape, src.shape)
	}
	v.copyFrom(src)
	return nil
}

func (v View[T]) copyFrom(src View[T]) {
	if v.Rank() <= 1 {
		copy(v.data, src.data)
		return
	}
	for i := 0; i < v.Extent(); i++ {
		v.Sub(i).copyFrom(src.Sub(i))
	}
}

// AssignList assigns the given scalars in row-major order and zero-fills
// every unspecified trailing element, the way a braced initializer list of
// fewer elements initializes an array. Returns ErrLength when more values
// are given than the view holds. Panics on read-only views.
func (v View[T]) AssignList(values ...T) error {
	v.mustWrite()
	if len(values) > len(v.data) {
		return fmt.Errorf("%w: %d values for %d elements", ErrLength, len(values), len(v.data))
	}
	n := copy(v.data, values)
	var zero T
	for i := n; i < len(v.data); i++ {
		v.data[i] = zero
	}
	return nil
}

// SwapData performs a deep, element-wise swap of the contents of two
// same-shaped views. Both views keep referring to their own storage; only
// the element values move. Use SwapViews for the shallow form that swaps
// which storage each view refers to.
//
// Returns ErrShapeMismatch when the shapes disagree. Panics when either
// view is read-only.
func (v View[T]) SwapData(other View[T]) error {
	v.mustWrite()
	other.mustWrite()
	if !v.shape.Equal(other.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, v.shape, other.shape)
	}
	v.swapData(other)
	return nil
}

// SwapArray performs a deep, element-wise swap with a raw array of the same
// shape. arrPtr must be a non-nil pointer to the array (the swap writes
// both sides).
func (v View[T]) SwapArray(arrPtr any) error {
	other, err := Bind[T](arrPtr)
	if err != nil {
		return err
	}
	return v.SwapData(other)
}

func (v View[T]) swapData(other View[T]) {
	if v.Rank() <= 1 {
		for i := range v.data {
			v.data[i], other.data[i] = other.data[i], v.data[i]
		}
		return
	}
	for i := 0; i < v.Extent(); i++ {
		v.Sub(i).swapData(other.Sub(i))
	}
}

// SwapViews exchanges which storage the two views refer to, without
// touching any element. After the call, reading through either view yields
// the data the other referred to before. This is the shallow counterpart
// of SwapData; the two are deliberately separate operations because the
// overloaded form is easy to misuse.
func SwapViews[T any](a, b *View[T]) {
	*a, *b = *b, *a
}

// Window returns a view over n consecutive outer sub-arrays starting at
// off, of shape [n d1 ... dk]. The window aliases the same storage, which
// is what lets a view act as a sliding frame over a larger array.
// Returns ErrIndexRange when [off, off+n) does not fit the extent or n is
// not positive.
func (v View[T]) Window(off, n int) (View[T], error) {
	if len(v.shape) == 0 {
		return View[T]{}, fmt.Errorf("%w: window on rank-0 view", ErrIndexRange)
	}
	if n <= 0 || off < 0 || off+n > v.Extent() {
		return View[T]{}, fmt.Errorf("%w: window [%d,%d) of extent %d", ErrIndexRange, off, off+n, v.Extent())
	}
	c := v.cell()
	shape := v.shape.Clone()
	shape[0] = n
	return View[T]{data: v.data[off*c : (off+n)*c : (off+n)*c], shape: shape, ro: v.ro}, nil
}

// bindAny binds an array given either as a value or as a pointer, for
// read-only use by CopyFrom and the comparisons. A value operand is copied
// into fresh addressable storage first; it is only ever read.
func bindAny[T any](arr any) (View[T], error) {
	rv := reflect.ValueOf(arr)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return View[T]{}, fmt.Errorf("%w, got nil %T", ErrNotArrayPointer, arr)
		}
		rv = rv.Elem()
	case reflect.Array:
		tmp := reflect.New(rv.Type()).Elem()
		tmp.Set(rv)
		rv = tmp
	default:
		return View[T]{}, fmt.Errorf("%w, got %T", ErrNotArrayPointer, arr)
	}
	shape, elem, err := ShapeOf(rv.Type())
	if err != nil {
		return View[T]{}, err
	}
	if want := reflect.TypeFor[T](); elem != want {
		return View[T]{}, fmt.Errorf("%w: array holds %v, view wants %v", ErrElementType, elem, want)
	}
	data := unsafe.Slice((*T)(rv.Addr().UnsafePointer()), shape.NumElements())
	return View[T]{data: data, shape: shape, ro: true}, nil
}
