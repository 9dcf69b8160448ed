// Package parallel is the small fork/join runtime shared by the kernels of
// this module.
//
// What it provides:
//   - Pool: a fixed-size set of worker goroutines created for one kernel call
//     and reused across every parallel region of that call.
//   - Pool.For: index-partitioned parallel loop. The range [0,n) is cut into
//     contiguous, non-overlapping Ranges (static schedule), one per worker.
//     The call returns only after every range finished (join barrier).
//   - Pool.ForAny: the same loop with a logical-OR reduction of one bool per
//     range, folded after the barrier so completion order cannot matter.
//   - Fork: two-way parallel sections with a join, built on errgroup.
//
// Not provided: work stealing, dynamic pool sizing,
// shared queues between kernels, cancellation or timeouts. Every region is
// CPU bound and runs to completion.
//
// Failure model:
//
//	A panic inside a task is recovered in the worker, all sibling ranges are
//	still joined, and the region returns ErrWorkerPanic wrapped with the panic
//	value. The error for the lowest failing range index wins.
//
// Usage:
//
//	pool, err := parallel.New(4)
//	if err != nil { ... }
//	defer pool.Close()
//	err = pool.For(len(out), func(lo, hi int) {
//		for i := lo; i < hi; i++ {
//			out[i] = f(i)
//		}
//	})
package parallel
