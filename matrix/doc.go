// Package matrix provides a row-major dense float64 matrix and the serial and
// parallel dense matrix products built on it.
//
// 🚀 Layout
//
//	Element (i,j) of an r×c Dense lives at data[i*c+j]. Shapes are fixed at
//	construction; no operation resizes a matrix.
//
// ✨ Products
//   - Mul: classic i-j-k triple loop. Each C[i][j] is accumulated in a scalar
//     over k = 0..K-1 and stored once.
//   - MulParallel: the flattened (i,j) output space [0, r*c) is split into
//     contiguous blocks, one per worker. A worker computes its cells with the
//     same k-ordered accumulation as Mul, so results are bit-identical to Mul
//     for every thread count. Operands are only read; every output cell has
//     exactly one writer, so the only synchronization is the final join.
//
// ⚠️ Accumulation order
//
//	Reordering the k loop (tree reduction, k-blocking with partial sums)
//	changes floating-point rounding. Both kernels share cellDot to keep the
//	order fixed.
//
// Errors are sentinels (errors.go) wrapped with the operation name; match
// them with errors.Is.
package matrix
