// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package traits provides stateless queries over array-like types for
// rank/shape-agnostic generic code.
//
// The queries work uniformly on builtin fixed-size arrays, on the view
// package's View, and on any type opting in via the ArrayLike interface.
// Each query accepts a reflect.Type, an ArrayLike, or a plain value.
//
// Example:
//
//	traits.Rank([2][3]int{})             // 2
//	traits.Extent([2][3]int{})           // 2
//	traits.ArraySize([2][3]int{})        // 6
//	traits.RemoveAllExtents([2][3]int{}) // int
//	traits.Rank(view.MustBind[int](&a))  // rank of a
package traits

import (
	"reflect"

	"github.com/ndview/ndview/internal/traits"
)

// ArrayLike is the opt-in hook for class types that model a fixed-size
// array: ArrayType returns the builtin array type the value corresponds to.
type ArrayLike = traits.ArrayLike

// Member decomposes a data-member declaration, exposing the owning struct
// type and the member's declared type.
type Member = traits.Member

// Sentinel errors reported by member lookups.
var (
	ErrNotStruct    = traits.ErrNotStruct
	ErrNoSuchMember = traits.ErrNoSuchMember
)

// Rank returns the number of array dimensions of x (0 for non-arrays).
func Rank(x any) int {
	return traits.Rank(x)
}

// Extent returns the outermost dimension's size of x (0 for non-arrays).
func Extent(x any) int {
	return traits.Extent(x)
}

// RemoveExtent returns x's type with its outermost dimension stripped.
func RemoveExtent(x any) reflect.Type {
	return traits.RemoveExtent(x)
}

// RemoveAllExtents returns x's scalar element type after stripping every
// dimension.
func RemoveAllExtents(x any) reflect.Type {
	return traits.RemoveAllExtents(x)
}

// ArraySize returns the total element count of x: the product of all
// extents, 1 for a non-array scalar, and 0 as soon as any dimension has
// unknown extent (a slice anywhere in the nesting).
func ArraySize(x any) int {
	return traits.ArraySize(x)
}

// AllSame reports whether every given type is the same type.
func AllSame(types ...reflect.Type) bool {
	return traits.AllSame(types...)
}

// SameType reports whether every given value has the same resolved type.
func SameType(xs ...any) bool {
	return traits.SameType(xs...)
}

// Complete reports whether x carries a resolved type at all. Go types are
// always fully defined once they exist; this is a narrow escape hatch for
// generic code ported from languages with incomplete types, not a
// general-purpose facility.
func Complete(x any) bool {
	return traits.Complete(x)
}

// MemberOf looks up the named field of struct type S.
//
// Example:
//
//	type Point struct{ X, Y int }
//	m, _ := traits.MemberOf[Point]("X")
//	m.Type() // int
func MemberOf[S any](name string) (Member, error) {
	return traits.MemberOf[S](name)
}

// SameOwner reports whether every given member belongs to the same owning
// struct type.
func SameOwner(members ...Member) bool {
	return traits.SameOwner(members...)
}
