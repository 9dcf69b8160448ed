package mergesort_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/FelippePaulo/ppc/mergesort"
)

func BenchmarkParallel(b *testing.B) {
	input := randomSeq(1<<16, 7)
	for depth := 0; depth <= 3; depth++ {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				seq := slices.Clone(input)
				b.StartTimer()
				if err := mergesort.SortParallel(seq, depth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
