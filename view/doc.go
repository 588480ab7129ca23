// Copyright 2025 The ndview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides non-owning views over fixed-shape multidimensional
// Go arrays.
//
// # Overview
//
// A View[T] is a reference wrapper for a builtin array of any rank: think
// of a statically-shaped span that hides the irregularities of nested
// arrays behind one uniform, rank-generic surface. A view never owns or
// allocates the data it refers to; binding is zero-copy and dropping a view
// has no effect on the array.
//
// # Basic Usage
//
//	import "github.com/ndview/ndview/view"
//
//	func main() {
//	    var a [3][4]int
//	    v := view.MustBind[int](&a)
//
//	    v.Fill(7)            // every a[i][j] == 7
//	    v.Sub(1).Fill(0)     // row 1 zeroed through a wrapped sub-view
//	    x := v.At(2, 3)      // a[2][3]
//	}
//
// # Direct vs. Wrapped Indexing
//
// The two index forms are distinct on purpose:
//   - Row(i) is the direct form: it yields the raw storage of the i-th
//     sub-array, exactly as indexing the builtin array would.
//   - Sub(i) is the wrapped form: it yields a lower-rank View, so chained
//     calls descend arbitrarily deep while staying inside the view API.
//
// Iteration (Rows) follows the direct form and yields raw windows, not
// wrapped views. Conflating the two forms silently changes behavior for
// multidimensional consumers; keep them apart.
//
// # Shallow vs. Deep
//
// Views have reference semantics. Assigning one View to another rebinds it
// (shallow); CopyFrom copies elements from a raw array (deep). The two swap
// forms are split into separate operations for the same reason:
//
//	a.SwapData(b)          // deep: element values move between arrays
//	view.SwapViews(&a, &b) // shallow: only the referred-to storage swaps
//
// # Constness
//
// A view built with BindRO (or OfString) mirrors the immutability of its
// source: mutating operations panic and raw-storage accessors return
// copies. A view built with Bind exposes the full read/write surface.
//
// # Lifetime
//
// The viewed array must outlive every use of the view; the classic dangling
// reference hazards of non-owning handles apply unchanged. Thread safety is
// the caller's responsibility, identical to raw array access.
//
// # Design
//
// All bulk operations (Fill, CopyFrom, SwapData, Equal, Compare) recurse
// over rank through sub-views down to rank 1, mirroring the hierarchical
// layout of nested arrays; storage access itself stays flat and contiguous.
// The recursion depth is bounded by the rank, which is small in practice.
package view
