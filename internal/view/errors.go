package view

import "errors"

var (
	// ErrNotArray indicates a type that is not a fixed-size array.
	ErrNotArray = errors.New("view: not a fixed-size array type")
	// ErrNotArrayPointer indicates a bind argument that is not a non-nil
	// pointer to a fixed-size array.
	ErrNotArrayPointer = errors.New("view: bind requires a non-nil pointer to a fixed-size array")
	// ErrElementType indicates a scalar element type that does not match
	// the view's type parameter.
	ErrElementType = errors.New("view: array element type does not match view element type")
	// ErrZeroExtent indicates an array with a zero-length dimension, which
	// a view can never represent.
	ErrZeroExtent = errors.New("view: zero-extent dimension")
	// ErrShapeMismatch indicates two operands whose shapes disagree.
	ErrShapeMismatch = errors.New("view: shape mismatch")
	// ErrLength indicates a flat data length that does not fit the shape.
	ErrLength = errors.New("view: data length does not match shape")
	// ErrIndexRange indicates a checked index at or beyond the extent.
	ErrIndexRange = errors.New("view: index out of range")
	// ErrReadOnly indicates a mutating operation on a read-only view.
	// It is the value carried by the panic such operations raise.
	ErrReadOnly = errors.New("view: mutating operation on read-only view")
)
