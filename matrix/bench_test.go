// Package matrix_test provides benchmarks for the dense products,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/FelippePaulo/ppc/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinkM defeats dead-code elimination.
var sinkM *matrix.Dense

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, threads := range []int{2, 4} {
			b.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(b *testing.B) {
				A := mustDense(b, n, n)
				B := mustDense(b, n, n)
				fillDenseRand(b, A, 1337)
				fillDenseRand(b, B, 4242)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.MulParallel(A, B, threads)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}
