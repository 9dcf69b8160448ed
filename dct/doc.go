// Package dct computes the orthonormal type-II discrete cosine transform and
// its inverse (type-III), serially and in parallel.
//
// Forward (DCT-II):
//
//	X[k] = c(k) · Σ_{n=0}^{N-1} x[n]·cos(π(n+½)k/N),  c(0)=√(1/N), c(k>0)=√(2/N)
//
// Inverse (DCT-III):
//
//	x[n] = Σ_{k=0}^{N-1} c(k)·X[k]·cos(π(n+½)k/N)
//
// Parallel decomposition:
//
//	Every output index depends only on the read-only input and is written
//	once, so the outer index range is split into contiguous static blocks
//	(per-index cost is uniform O(N)) and the only synchronization is the
//	final join. Serial and parallel variants evaluate the same per-index
//	function, so their outputs are bit-identical.
//
// N = 0 yields an empty output. Complexity: O(N²) time, O(N) memory.
package dct
