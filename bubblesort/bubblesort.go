// SPDX-License-Identifier: MIT

package bubblesort

import "github.com/FelippePaulo/ppc/parallel"

// Serial sorts seq in place with adjacent-swap bubble sort and returns the
// number of passes made.
//
// Each pass walks [0, limit-1) and swaps seq[i], seq[i+1] when
// seq[i] > seq[i+1]; after a pass the largest remaining value is in place, so
// limit shrinks by one. Passes stop after the first pass without swaps.
//
// Complexity: O(n²) time, O(1) memory.
func Serial(seq []float64) int {
	n := len(seq)
	if n < 2 {
		return 0
	}

	passes := 0
	for limit := n; ; limit-- {
		passes++
		swapped := false
		for i := 0; i < limit-1; i++ {
			// seq[i] depends on the swap made at i-1 in this same pass
			if seq[i] > seq[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				swapped = true
			}
		}
		if !swapped {
			return passes
		}
	}
}

// Parallel sorts seq in place with odd-even transposition sort on a pool of
// threads workers and returns the number of rounds made.
//
// One round is an even phase followed by an odd phase; the pairs of a phase
// are distributed over the workers in contiguous blocks. Rounds stop after
// the first round in which neither phase swapped.
//
// Errors:
//   - ErrInvalidThreads if threads < 1.
//   - parallel.ErrWorkerPanic if a phase failed; seq is then partially sorted.
func Parallel(seq []float64, threads int) (int, error) {
	if threads < 1 {
		return 0, sortErrorf(opParallel, ErrInvalidThreads)
	}
	n := len(seq)
	if n < 2 {
		return 0, nil
	}

	pool, err := parallel.New(min(threads, n/2))
	if err != nil {
		return 0, sortErrorf(opParallel, err)
	}
	defer pool.Close()

	// pair p of the even phase is (2p, 2p+1); of the odd phase (2p+1, 2p+2)
	evenPairs, oddPairs := n/2, (n-1)/2

	rounds := 0
	for {
		rounds++
		swappedEven, err := pool.ForAny(evenPairs, phase(seq, 0))
		if err != nil {
			return rounds, sortErrorf(opParallel, err)
		}
		swappedOdd, err := pool.ForAny(oddPairs, phase(seq, 1))
		if err != nil {
			return rounds, sortErrorf(opParallel, err)
		}
		if !swappedEven && !swappedOdd {
			return rounds, nil
		}
	}
}

// phase returns the body of one phase: compare-and-swap of pairs
// (2p+offset, 2p+offset+1) for p in [lo,hi). Pairs of one phase never share
// an index, so concurrent bodies touch disjoint elements.
func phase(seq []float64, offset int) func(lo, hi int) bool {
	return func(lo, hi int) bool {
		swapped := false
		for p := lo; p < hi; p++ {
			i := 2*p + offset
			if seq[i] > seq[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				swapped = true
			}
		}
		return swapped
	}
}

// IsSorted reports whether seq is in non-decreasing order under IEEE
// comparison (a NaN never counts as out of order).
func IsSorted(seq []float64) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}

	return true
}
