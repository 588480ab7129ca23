package view

import "testing"

func BenchmarkFillRank3(b *testing.B) {
	var a [8][8][8]float64
	v := MustBind[float64](&a)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Fill(1.0)
	}
}

func BenchmarkCopyFromRank2(b *testing.B) {
	var src, dst [64][64]int32
	v := MustBind[int32](&dst)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.CopyFrom(&src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEqualRank3(b *testing.B) {
	var x, y [8][8][8]int
	vx := MustBind[int](&x)
	vy := MustBind[int](&y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Equal(vx, vy) {
			b.Fatal("expected equal")
		}
	}
}

func BenchmarkAt(b *testing.B) {
	var a [16][16]float32
	v := MustBind[float32](&a)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.At(i%16, (i*7)%16)
	}
}
