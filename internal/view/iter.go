package view

// Rows returns the sequence of raw sub-array windows, one per outer index.
// The elements are flat storage windows, not wrapped views: iteration
// deliberately mirrors ranging over the builtin array, where each step
// yields the raw sub-array, while Sub is the form that wraps. The slice is
// freshly built on every call, so re-iterating a view always reproduces the
// same sequence; index from the end for reverse traversal. Read-only views
// yield copies.
func (v View[T]) Rows() [][]T {
	rows := make([][]T, v.Extent())
	for i := range rows {
		rows[i] = v.Row(i)
	}
	return rows
}

// Data returns the view's entire flat storage in row-major order, aliased,
// so writes through it are visible through the view and the original array.
// Read-only views return a copy.
func (v View[T]) Data() []T {
	if v.ro {
		out := make([]T, len(v.data))
		copy(out, v.data)
		return out
	}
	return v.data
}

// Subs decomposes the view into its Extent() wrapped sub-views, the way the
// raw array decomposes into its named parts. For a rank-1 view the parts
// are rank-0 scalar views.
func (v View[T]) Subs() []View[T] {
	subs := make([]View[T], v.Extent())
	for i := range subs {
		subs[i] = v.Sub(i)
	}
	return subs
}
