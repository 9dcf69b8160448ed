// Package bubblesort sorts float64 sequences in place with the classic
// adjacent-swap bubble sort and with its parallel counterpart, odd-even
// transposition sort.
//
// Why two algorithms:
//
//	Serial bubble sort is inherently sequential: within one pass every
//	comparison (i, i+1) reads the value the previous comparison (i-1, i)
//	may just have written. Odd-even transposition removes that dependency by
//	splitting each round into two phases:
//	  • even phase: compare-and-swap pairs (0,1), (2,3), (4,5), ...
//	  • odd phase:  compare-and-swap pairs (1,2), (3,4), (5,6), ...
//	Inside a phase all pairs are index-disjoint, so they run on different
//	workers without locks. The only shared value is "did any swap happen",
//	reduced with logical OR after each phase barrier.
//
// Guarantees:
//   - Both functions leave the sequence in non-decreasing order.
//   - Only the final order is guaranteed equal between Serial and Parallel;
//     the intermediate states and swap sequences differ.
//   - An already sorted sequence costs exactly one pass / one round.
//   - Sequences of length <= 1 are returned untouched (0 passes).
//
// NaN policy:
//
//	Comparisons follow IEEE-754: any comparison with NaN is false, so a NaN
//	never triggers a swap and may stay where it was, leaving the finite values
//	around it sorted only within their NaN-delimited runs. Use a total-order
//	sort if NaNs must move.
//
// Complexity:
//   - Serial:   O(n²) comparisons, O(1) extra memory.
//   - Parallel: O(n) rounds of O(n/threads) work each, O(threads) extra memory.
package bubblesort
