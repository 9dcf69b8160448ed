// SPDX-License-Identifier: MIT

package matrix

import "github.com/FelippePaulo/ppc/parallel"

// ZeroSum is the initial value of every per-cell accumulation.
const ZeroSum = 0.0

// Mul returns C = a × b with C[i][j] = Σ_k a[i][k]·b[k][j].
// Operands are not mutated; C is freshly allocated (rows(a) × cols(b)).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (fails before any allocation).
//   - Stage 2: i-j-k loops; each cell accumulated in a scalar via cellDot
//     and stored once.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·K·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			res.data[i*b.c+j] = cellDot(a, b, i, j)
		}
	}

	return res, nil
}

// MulParallel computes the same product as Mul on threads workers.
//
// The flattened output index space [0, rows(a)*cols(b)) is split into
// contiguous blocks (parallel.Split), one per worker; cell idx maps to
// (idx / cols, idx % cols). Each cell is written exactly once by exactly one
// worker and the per-cell k order matches Mul, so the result is
// bit-identical to Mul for any thread count.
//
// Errors:
//   - ErrInvalidThreads if threads < 1.
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//   - parallel.ErrWorkerPanic if a block failed; no partial result is returned.
func MulParallel(a, b *Dense, threads int) (*Dense, error) {
	if threads < 1 {
		return nil, matrixErrorf(opMulParallel, ErrInvalidThreads)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	cells := a.r * b.c

	pool, err := parallel.New(min(threads, cells))
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	defer pool.Close()

	cols := b.c
	err = pool.For(cells, func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			res.data[idx] = cellDot(a, b, idx/cols, idx%cols)
		}
	})
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// cellDot returns Σ_k a[i][k]·b[k][j] accumulated for k = 0..K-1 in order.
// Shared by both kernels to pin the summation order.
func cellDot(a, b *Dense, i, j int) float64 {
	sum := ZeroSum
	rowA := a.data[i*a.c : (i+1)*a.c]
	for k, av := range rowA {
		// the conversion forbids FMA fusion
		sum += float64(av * b.data[k*b.c+j])
	}

	return sum
}
