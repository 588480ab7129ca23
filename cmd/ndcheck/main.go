// Package main exercises the ndview public API with assertions; it doubles
// as a usage example. Exit status is 1 when any check fails.
package main

import (
	"fmt"
	"os"

	"github.com/ndview/ndview/traits"
	"github.com/ndview/ndview/view"
)

var failed bool

func check(name string, ok bool) {
	if ok {
		fmt.Printf("PASS %s\n", name)
		return
	}
	fmt.Fprintf(os.Stderr, "FAIL %s\n", name)
	failed = true
}

func transpose() {
	m := [3][3]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	want := [3][3]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}

	v := view.MustBind[int](&m)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			x, y := v.At(i, j), v.At(j, i)
			v.Set(y, i, j)
			v.Set(x, j, i)
		}
	}
	check("transpose 3x3 in place", view.EqualArray(v, want))
}

func zeroFill() {
	b := [2][2]bool{{true, true}, {true, true}}
	v := view.MustBind[bool](&b)
	err := v.AssignList(true)
	check("assign-list zero fill", err == nil && b == [2][2]bool{{true, false}, {false, false}})
}

func slidingWindow() {
	var a [4][2]int
	v := view.MustBind[int](&a)
	for off := 0; off+2 <= v.Extent(); off++ {
		w, err := v.Window(off, 2)
		if err != nil {
			check("sliding window", false)
			return
		}
		w.Fill(off + 1)
	}
	check("sliding window fill", a == [4][2]int{{1, 1}, {2, 2}, {3, 3}, {3, 3}})
}

func stringLiteral() {
	v := view.OfString("view")
	lit := [4]byte{'v', 'i', 'e', 'w'}
	check("string literal equality", view.EqualArray(v, lit) && v.ReadOnly())

	defer func() {
		check("string literal immutability", recover() != nil)
	}()
	v.Fill('x')
}

func traitQueries() {
	var a [2][3][4]int
	v := view.MustBind[int](&a)
	check("trait queries", traits.Rank(a) == 3 &&
		traits.Rank(v) == 3 &&
		traits.Extent(v) == 2 &&
		traits.ArraySize(a) == 24 &&
		traits.ArraySize([][3]int{}) == 0 &&
		traits.RemoveAllExtents(v).Kind().String() == "int")
}

func swapAsymmetry() {
	x := [2]int{1, 2}
	y := [2]int{3, 4}
	vx := view.MustBind[int](&x)
	vy := view.MustBind[int](&y)

	view.SwapViews(&vx, &vy)
	shallow := x == [2]int{1, 2} && vx.At(0) == 3

	if err := vx.SwapData(vy); err != nil {
		check("swap asymmetry", false)
		return
	}
	deep := x == [2]int{3, 4} && y == [2]int{1, 2}
	check("swap asymmetry", shallow && deep)
}

func main() {
	transpose()
	zeroFill()
	slidingWindow()
	stringLiteral()
	traitQueries()
	swapAsymmetry()
	if failed {
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}
