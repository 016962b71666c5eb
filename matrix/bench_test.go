// Package matrix_test provides benchmarks for the kernels on the sizes the
// coupling engine actually sees (composites up to order ~22).
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{6, 10, 16, 22}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkS *matrix.SVDResult
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 1337)
			y := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSVD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dec, err := matrix.SVD(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = dec
			}
		})
	}
}

func BenchmarkLowRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d/k=3", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.LowRank(x, 3)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkFrobeniusNorm(b *testing.B) {
	b.ReportAllocs()
	x := RandFilledDense(b, 22, 22, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := matrix.FrobeniusNorm(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = f
	}
}
