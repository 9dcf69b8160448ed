// SPDX-License-Identifier: MIT

package mergesort

import (
	"math/bits"

	"github.com/FelippePaulo/ppc/parallel"
)

// Serial sorts seq[lo..hi] (inclusive) in place, stably.
//
// lo >= hi is a no-op. An empty range is written as hi == lo-1.
// Errors: ErrInvalidRange when lo < 0, hi >= len(seq) or lo > hi+1.
// Complexity: O(n log n) time, O(n) temporary memory per merge level.
func Serial(seq []float64, lo, hi int) error {
	if err := validateRange(seq, lo, hi); err != nil {
		return sortErrorf(opSerial, err)
	}
	sortSerial(seq, lo, hi)

	return nil
}

// Parallel sorts seq[lo..hi] (inclusive) in place with a fork/join fan-out
// of depth levels. depth == 0 is exactly Serial.
//
// Errors:
//   - ErrInvalidRange as in Serial.
//   - ErrInvalidDepth when depth < 0.
//   - parallel.ErrWorkerPanic if a forked subrange failed; returned only after
//     its sibling has been joined. seq is then only partially sorted.
func Parallel(seq []float64, lo, hi, depth int) error {
	if depth < 0 {
		return sortErrorf(opParallel, ErrInvalidDepth)
	}
	if err := validateRange(seq, lo, hi); err != nil {
		return sortErrorf(opParallel, err)
	}
	if err := sortParallel(seq, lo, hi, depth); err != nil {
		return sortErrorf(opParallel, err)
	}

	return nil
}

// Sort sorts the whole of seq serially.
func Sort(seq []float64) {
	sortSerial(seq, 0, len(seq)-1)
}

// SortParallel sorts the whole of seq with the given fan-out depth.
func SortParallel(seq []float64, depth int) error {
	return Parallel(seq, 0, len(seq)-1, depth)
}

// DepthForThreads returns ceil(log2(threads)), the smallest depth whose
// 2^depth leaf tasks cover threads workers. threads <= 1 yields 0.
func DepthForThreads(threads int) int {
	if threads <= 1 {
		return 0
	}

	return bits.Len(uint(threads - 1))
}

func validateRange(seq []float64, lo, hi int) error {
	// lo <= hi+1 with lo >= 0 also bounds hi >= -1
	if lo < 0 || hi >= len(seq) || lo > hi+1 {
		return rangeErrorf("validateRange", lo, hi, len(seq))
	}

	return nil
}

func sortSerial(seq []float64, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	sortSerial(seq, lo, mid)
	sortSerial(seq, mid+1, hi)
	merge(seq, lo, mid, hi)
}

func sortParallel(seq []float64, lo, hi, depth int) error {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2

	if depth <= 0 {
		sortSerial(seq, lo, mid)
		sortSerial(seq, mid+1, hi)
	} else {
		// children write disjoint halves; the merge below waits for both
		err := parallel.Fork(
			func() error { return sortParallel(seq, lo, mid, depth-1) },
			func() error { return sortParallel(seq, mid+1, hi, depth-1) },
		)
		if err != nil {
			return err
		}
	}
	merge(seq, lo, mid, hi)

	return nil
}

// merge combines the sorted runs seq[lo..mid] and seq[mid+1..hi]. Each run
// is copied to a fresh buffer; on equal keys the left element goes first.
func merge(seq []float64, lo, mid, hi int) {
	left := make([]float64, mid-lo+1)
	right := make([]float64, hi-mid)
	copy(left, seq[lo:mid+1])
	copy(right, seq[mid+1:hi+1])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			seq[k] = left[i]
			i++
		} else {
			seq[k] = right[j]
			j++
		}
		k++
	}
	k += copy(seq[k:], left[i:])
	copy(seq[k:hi+1], right[j:])
}
