package matrix_test

import (
	"fmt"

	"github.com/FelippePaulo/ppc/matrix"
)

// ExampleMulParallel multiplies two 2×2 matrices on two workers.
func ExampleMulParallel() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.MulParallel(a, b, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}
