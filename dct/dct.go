// SPDX-License-Identifier: MIT

package dct

import (
	"math"

	"github.com/FelippePaulo/ppc/parallel"
)

// Transform returns the DCT-II of input. input is not modified.
func Transform(input []float64) []float64 {
	out := make([]float64, len(input))
	for k := range out {
		out[k] = forward(input, k)
	}

	return out
}

// TransformParallel returns the DCT-II of input computed on threads workers.
// The result is bit-identical to Transform.
//
// Errors: ErrInvalidThreads; parallel.ErrWorkerPanic (no output is returned).
func TransformParallel(input []float64, threads int) ([]float64, error) {
	out, err := run(input, threads, forward)
	if err != nil {
		return nil, dctErrorf(opTransformParallel, err)
	}

	return out, nil
}

// Inverse returns the DCT-III of coeffs, undoing Transform up to rounding.
func Inverse(coeffs []float64) []float64 {
	out := make([]float64, len(coeffs))
	for n := range out {
		out[n] = inverse(coeffs, n)
	}

	return out
}

// InverseParallel is Inverse computed on threads workers.
func InverseParallel(coeffs []float64, threads int) ([]float64, error) {
	out, err := run(coeffs, threads, inverse)
	if err != nil {
		return nil, dctErrorf(opInverseParallel, err)
	}

	return out, nil
}

// run evaluates cell(src, i) for every i on a pool; each worker writes only
// the indices of its own block.
func run(src []float64, threads int, cell func([]float64, int) float64) ([]float64, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}
	out := make([]float64, len(src))
	if len(src) == 0 {
		return out, nil
	}

	pool, err := parallel.New(min(threads, len(src)))
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	err = pool.For(len(out), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = cell(src, i)
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scale is the orthonormal factor c(k).
func scale(k, n int) float64 {
	if k == 0 {
		return math.Sqrt(1.0 / float64(n))
	}

	return math.Sqrt(2.0 / float64(n))
}

// basis is cos(π(n+½)k/N), evaluated in the same operation order everywhere.
func basis(n, k, size int) float64 {
	return math.Cos(math.Pi * (float64(n) + 0.5) * float64(k) / float64(size))
}

// forward computes X[k]; the sum over n is a thread-local scalar.
func forward(x []float64, k int) float64 {
	size := len(x)
	sum := 0.0
	for n, v := range x {
		sum += float64(v * basis(n, k, size))
	}

	return scale(k, size) * sum
}

// inverse computes x[n] from the coefficients.
func inverse(c []float64, n int) float64 {
	size := len(c)
	sum := 0.0
	for k, v := range c {
		sum += float64(scale(k, size) * v * basis(n, k, size))
	}

	return sum
}
