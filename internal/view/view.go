package view

import (
	"fmt"
	"reflect"
	"unsafe"
)

// View is a non-owning handle over a fixed-shape multidimensional Go array
// with scalar element type T.
//
// The view holds a flat slice aliasing the caller's storage together with
// the array's shape; it never allocates for or owns the viewed data, and
// dropping a view has no effect on the array. The caller is responsible for
// keeping the array alive for as long as any view over it is used.
//
// Assigning one View to another rebinds the destination to the source's
// storage (a shallow pointer copy); it does not copy elements. Use CopyFrom
// for a deep, element-wise copy and SwapData/SwapViews for the deep and
// shallow swap forms.
//
// A view built with BindRO mirrors the immutability of its source: every
// mutating operation on it panics with ErrReadOnly, and raw-storage
// accessors (Row, Rows, Data, Front, Back) return copies instead of aliases.
type View[T any] struct {
	data  []T
	shape Shape
	ro    bool
}

// Bind constructs a mutable view over the array *arrPtr.
//
// arrPtr must be a non-nil pointer to a fixed-size array of any rank whose
// scalar element type (the type left after stripping all dimensions) is
// exactly T, and whose every extent is greater than zero.
//
//	var a [3][4]int
//	v, err := view.Bind[int](&a)
func Bind[T any](arrPtr any) (View[T], error) {
	rv := reflect.ValueOf(arrPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return View[T]{}, fmt.Errorf("%w, got %T", ErrNotArrayPointer, arrPtr)
	}
	shape, elem, err := ShapeOf(rv.Type().Elem())
	if err != nil {
		return View[T]{}, err
	}
	if want := reflect.TypeFor[T](); elem != want {
		return View[T]{}, fmt.Errorf("%w: array holds %v, view wants %v", ErrElementType, elem, want)
	}
	data := unsafe.Slice((*T)(rv.UnsafePointer()), shape.NumElements())
	return View[T]{data: data, shape: shape}, nil
}

// BindRO constructs a read-only view over the array *arrPtr. The view
// aliases the array (later writes to the array remain visible through it)
// but exposes no mutating surface. See Bind for the argument contract.
func BindRO[T any](arrPtr any) (View[T], error) {
	v, err := Bind[T](arrPtr)
	if err != nil {
		return View[T]{}, err
	}
	v.ro = true
	return v, nil
}

// MustBind is Bind, panicking on error.
func MustBind[T any](arrPtr any) View[T] {
	v, err := Bind[T](arrPtr)
	if err != nil {
		panic(err)
	}
	return v
}

// MustBindRO is BindRO, panicking on error.
func MustBindRO[T any](arrPtr any) View[T] {
	v, err := BindRO[T](arrPtr)
	if err != nil {
		panic(err)
	}
	return v
}

// Wrap binds an existing flat slice as a view of the given shape, outermost
// dimension first. The slice is aliased, not copied; len(data) must equal
// shape.NumElements() and every extent must be positive.
func Wrap[T any](data []T, shape Shape) (View[T], error) {
	if err := shape.Validate(); err != nil {
		return View[T]{}, err
	}
	if n := shape.NumElements(); len(data) != n {
		return View[T]{}, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrLength, shape, n, len(data))
	}
	return View[T]{data: data[:len(data):len(data)], shape: shape.Clone()}, nil
}

// OfString returns a read-only rank-1 byte view over the storage of s.
// No copy is made; the string's immutability is enforced the same way as
// for BindRO views.
func OfString(s string) View[byte] {
	if len(s) == 0 {
		panic(fmt.Errorf("%w: empty string", ErrZeroExtent))
	}
	data := unsafe.Slice(unsafe.StringData(s), len(s))
	return View[byte]{data: data, shape: Shape{len(s)}, ro: true}
}

// Rank returns the number of dimensions. Sub-views of rank-1 views have
// rank 0 and hold exactly one scalar, reachable via Item.
func (v View[T]) Rank() int {
	return v.shape.Rank()
}

// Extent returns the size of the outermost dimension, or 1 for a rank-0
// scalar view.
func (v View[T]) Extent() int {
	if len(v.shape) == 0 {
		return 1
	}
	return v.shape[0]
}

// Len returns the outermost extent, like len() on the viewed array.
func (v View[T]) Len() int {
	return v.Extent()
}

// MaxLen returns the outermost extent; the extent is fixed at bind time so
// Len and MaxLen always agree.
func (v View[T]) MaxLen() int {
	return v.Extent()
}

// Empty always reports false: zero-extent arrays cannot be bound.
func (v View[T]) Empty() bool {
	return false
}

// Shape returns a copy of the view's shape.
func (v View[T]) Shape() Shape {
	return v.shape.Clone()
}

// NumElements returns the total number of scalar elements reachable from
// the view.
func (v View[T]) NumElements() int {
	return v.shape.NumElements()
}

// ReadOnly reports whether the view was built over immutable storage.
func (v View[T]) ReadOnly() bool {
	return v.ro
}

// Elem returns the scalar element type T.
func (v View[T]) Elem() reflect.Type {
	return reflect.TypeFor[T]()
}

// ArrayType reconstructs the viewed array's type, e.g. [3][4]int for a
// view of shape [3][4] over int. Rank-0 views yield the scalar type.
// This is the hook the traits package uses to treat views and raw arrays
// uniformly.
func (v View[T]) ArrayType() reflect.Type {
	t := reflect.TypeFor[T]()
	for i := len(v.shape) - 1; i >= 0; i-- {
		t = reflect.ArrayOf(v.shape[i], t)
	}
	return t
}

// String renders the view like "View[3][4]int ro=false".
func (v View[T]) String() string {
	return fmt.Sprintf("View%v%v ro=%v", v.shape, reflect.TypeFor[T](), v.ro)
}

// cell returns the number of scalar elements in one outer sub-array.
func (v View[T]) cell() int {
	return v.shape.inner().NumElements()
}

// window returns the flat storage of the i-th outer sub-array, aliased.
func (v View[T]) window(i int) []T {
	if len(v.shape) == 0 {
		panic("view: index on rank-0 view")
	}
	if i < 0 || i >= v.Extent() {
		panic(fmt.Sprintf("view: index %d out of range for extent %d", i, v.Extent()))
	}
	c := v.cell()
	return v.data[i*c : (i+1)*c : (i+1)*c]
}

// mustWrite panics when the view is read-only.
func (v View[T]) mustWrite() {
	if v.ro {
		panic(ErrReadOnly)
	}
}

// Row is the direct index form: it returns the raw flat storage of the i-th
// outer sub-array, aliasing the viewed array, so writes through the window
// are visible through the view and the original array. For rank 1 the
// window holds the single scalar at position i.
//
// Row panics when i is out of range, matching raw-array indexing; use
// Checked for the validated form. On a read-only view Row returns a copy.
//
// Contrast with Sub, the wrapped index form, which returns a lower-rank
// View instead of raw storage.
func (v View[T]) Row(i int) []T {
	w := v.window(i)
	if v.ro {
		out := make([]T, len(w))
		copy(out, w)
		return out
	}
	return w
}

// Sub is the wrapped index form: it returns a view of rank Rank()-1 over
// the i-th sub-array, so chained calls descend arbitrarily deep while
// always yielding a View. For a rank-1 view the result is the rank-0
// scalar view at position i, read and written via Item and SetItem.
//
// Sub panics when i is out of range.
//
//	var a [2][3]int
//	v := view.MustBind[int](&a)
//	v.Sub(1).Sub(2).SetItem(9) // a[1][2] = 9
func (v View[T]) Sub(i int) View[T] {
	return View[T]{data: v.window(i), shape: v.shape.inner(), ro: v.ro}
}

// Checked is the index-validated access form: like Row, but reporting
// ErrIndexRange instead of panicking when i is not less than the extent.
// It is the only checked accessor; every other indexing form is unchecked.
func (v View[T]) Checked(i int) ([]T, error) {
	if i < 0 || i >= v.Extent() {
		return nil, fmt.Errorf("%w: index %d, extent %d", ErrIndexRange, i, v.Extent())
	}
	return v.Row(i), nil
}

// At returns the scalar at the given index path, one index per dimension.
// Panics on arity or bounds violations.
//
//	var a [3][4]int
//	v := view.MustBind[int](&a)
//	x := v.At(1, 2) // a[1][2]
func (v View[T]) At(indices ...int) T {
	return v.data[v.offset(indices)]
}

// Set stores value at the given index path, one index per dimension.
// Panics on arity or bounds violations, and on read-only views.
func (v View[T]) Set(value T, indices ...int) {
	v.mustWrite()
	v.data[v.offset(indices)] = value
}

// offset computes the flat row-major offset of a full index path.
func (v View[T]) offset(indices []int) int {
	if len(indices) != len(v.shape) {
		panic(fmt.Sprintf("view: expected %d indices, got %d", len(v.shape), len(indices)))
	}
	off := 0
	strides := v.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= v.shape[i] {
			panic(fmt.Sprintf("view: index %d out of bounds for dimension %d (extent %d)", idx, i, v.shape[i]))
		}
		off += idx * strides[i]
	}
	return off
}

// Item returns the scalar held by a rank-0 view. Panics for rank > 0.
func (v View[T]) Item() T {
	if len(v.shape) != 0 {
		panic(fmt.Sprintf("view: Item on rank-%d view", len(v.shape)))
	}
	return v.data[0]
}

// SetItem stores the scalar held by a rank-0 view. Panics for rank > 0 and
// on read-only views.
func (v View[T]) SetItem(value T) {
	v.mustWrite()
	if len(v.shape) != 0 {
		panic(fmt.Sprintf("view: SetItem on rank-%d view", len(v.shape)))
	}
	v.data[0] = value
}

// Front returns the raw window of the first sub-array.
func (v View[T]) Front() []T {
	return v.Row(0)
}

// Back returns the raw window of the last sub-array.
func (v View[T]) Back() []T {
	return v.Row(v.Extent() - 1)
}
