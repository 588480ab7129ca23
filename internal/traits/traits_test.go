package traits

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// shapedType is a minimal ArrayLike implementation standing in for any
// class type that models an array.
type shapedType struct{ t reflect.Type }

func (s shapedType) ArrayType() reflect.Type { return s.t }

func TestRank(t *testing.T) {
	tests := []struct {
		x    any
		want int
	}{
		{7, 0},
		{"s", 0},
		{[]int{}, 0},
		{[5]int{}, 1},
		{[2][3]int{}, 2},
		{[2][3][4]byte{}, 3},
		{reflect.TypeFor[[2][2]float64](), 2},
		{shapedType{reflect.TypeFor[[6][7]int]()}, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rank(tt.x), "Rank(%v)", tt.x)
	}
}

func TestExtent(t *testing.T) {
	assert.Equal(t, 5, Extent([5]int{}))
	assert.Equal(t, 2, Extent([2][9]int{}))
	assert.Equal(t, 0, Extent(3.5))
	assert.Equal(t, 0, Extent([]int{}))
	assert.Equal(t, 6, Extent(shapedType{reflect.TypeFor[[6][7]int]()}))
}

func TestRemoveExtent(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[[3]int](), RemoveExtent([2][3]int{}))
	assert.Equal(t, reflect.TypeFor[int](), RemoveExtent([2]int{}))
	assert.Equal(t, reflect.TypeFor[int](), RemoveExtent(1))
}

func TestRemoveAllExtents(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), RemoveAllExtents([2][3][4]int{}))
	assert.Equal(t, reflect.TypeFor[string](), RemoveAllExtents("x"))
	// Stripping stops at a non-array, so a slice in the nesting survives.
	assert.Equal(t, reflect.TypeFor[[][3]int](), RemoveAllExtents([2][][3]int{}))
}

func TestArraySize(t *testing.T) {
	tests := []struct {
		x    any
		want int
	}{
		{[2][3]int{}, 6},
		{[2][3][4]int{}, 24},
		{[5]int{}, 5},
		{3.14, 1},          // non-array scalar
		{[][3]int{}, 0},    // unknown outer extent
		{[3][]int{}, 0},    // unknown inner extent
		{[2][3][]int{}, 0}, // unknown extent anywhere zeroes the total
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ArraySize(tt.x), "ArraySize(%T)", tt.x)
	}
}

func TestAllSame(t *testing.T) {
	ti := reflect.TypeFor[int]()
	tf := reflect.TypeFor[float64]()
	assert.True(t, AllSame())
	assert.True(t, AllSame(ti))
	assert.True(t, AllSame(ti, ti, ti))
	assert.False(t, AllSame(ti, tf))
}

func TestSameType(t *testing.T) {
	assert.True(t, SameType(1, 2, 3))
	assert.False(t, SameType(1, 2.0))
	assert.True(t, SameType())
	// An ArrayLike counts as its corresponding array type.
	assert.True(t, SameType(shapedType{reflect.TypeFor[[2]int]()}, [2]int{}))
}

func TestComplete(t *testing.T) {
	assert.True(t, Complete(1))
	assert.True(t, Complete(reflect.TypeFor[[2]int]()))
	assert.False(t, Complete(nil))
}
