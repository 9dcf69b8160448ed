// Package mergesort sorts float64 sequences in place with top-down merge
// sort, serially or with a bounded fork/join fan-out.
//
// Ranges are inclusive: Serial(seq, lo, hi) sorts seq[lo..hi]. The split
// point is mid = lo + (hi-lo)/2, the left half is [lo, mid] and the right
// half [mid+1, hi]. Merging copies each half into its own temporary buffer
// and takes from the left buffer on ties, which makes the sort stable.
//
// Parallel fan-out:
//
//	Parallel(seq, lo, hi, depth) forks the two halves as parallel sections
//	while depth > 0 (depth decreases by one per level), so at most 2^depth
//	leaf tasks run concurrently; at depth 0 the halves are sorted serially.
//	The merge of a node always runs on one goroutine, after both children
//	joined: it reads all of [lo, hi], which both children wrote.
//
//	Split points, merge order and tie-breaking do not depend on depth, so
//	every depth produces byte-identical output. Depths beyond the available
//	cores only oversubscribe; they never affect the result.
//
// Use DepthForThreads to derive the depth that gives one leaf task per
// thread (2 threads → 1, 4 threads → 2).
package mergesort
