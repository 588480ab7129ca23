package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end scenarios combining several view operations.

func TestScenarioTransposeInPlace(t *testing.T) {
	m := [3][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	want := [3][3]int{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}

	v := MustBind[int](&m)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			x, y := v.At(i, j), v.At(j, i)
			v.Set(y, i, j)
			v.Set(x, j, i)
		}
	}

	assert.Equal(t, want, m)
	assert.True(t, EqualArray(v, want))
}

func TestScenarioSlidingWindow(t *testing.T) {
	// A 4-row array seen through 2-row windows sliding one row at a time;
	// each window is filled with a distinct marker, so later windows
	// overwrite the overlap of earlier ones.
	var a [4][2]int
	v := MustBind[int](&a)

	for off := 0; off+2 <= v.Extent(); off++ {
		w, err := v.Window(off, 2)
		require.NoError(t, err)
		w.Fill(off + 1)
	}

	want := [4][2]int{{1, 1}, {2, 2}, {3, 3}, {3, 3}}
	assert.Equal(t, want, a)
}

func TestScenarioStringLiteralView(t *testing.T) {
	const lit = "array"
	v := OfString(lit)

	assert.True(t, v.ReadOnly())
	assert.Equal(t, 1, v.Rank())
	assert.Equal(t, len(lit), v.Extent())
	assert.Equal(t, byte('r'), v.At(2))
	assert.Equal(t, []byte(lit), v.Data())

	other := [5]byte{'a', 'r', 'r', 'a', 'y'}
	assert.True(t, Equal(v, MustBindRO[byte](&other)))

	// Immutable through every mutating entry point.
	assert.Panics(t, func() { v.Fill('x') })
	assert.Panics(t, func() { v.Set('x', 0) })
	assert.Panics(t, func() { v.Sub(0).SetItem('x') })

	// Raw accessors return copies, so the literal cannot be reached.
	v.Data()[0] = 'X'
	v.Row(1)[0] = 'X'
	assert.Equal(t, byte('a'), v.At(0))
}

func TestScenarioWindowComparison(t *testing.T) {
	// Two windows of the same array order like their contents.
	a := [4]int{1, 2, 3, 4}
	v := MustBind[int](&a)

	lo, err := v.Window(0, 2)
	require.NoError(t, err)
	hi, err := v.Window(2, 2)
	require.NoError(t, err)

	assert.True(t, Less(lo, hi))
	assert.False(t, Equal(lo, hi))

	require.NoError(t, lo.CopyFrom([2]int{3, 4}))
	assert.True(t, Equal(lo, hi))
}
