// SPDX-License-Identifier: MIT

package parallel

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a fixed set of worker goroutines bound to one kernel call.
// Workers are spawned by New and live until Close.
//
// A Pool runs one region at a time: For and ForAny must not be called
// concurrently on the same Pool.
type Pool struct {
	workers   int
	workC     chan task
	closeOnce sync.Once
	closed    atomic.Bool

	// one OR-reduction slot per range, reused across ForAny regions
	slots []flagSlot
}

// task is one range of one region.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// flagSlot keeps each range's reduction flag on its own cache line so that
// workers writing their flags do not invalidate each other's lines.
type flagSlot struct {
	set bool
	_   cpu.CacheLinePad
}

// New creates a pool with exactly workers goroutines.
// Returns ErrInvalidWorkers when workers < 1.
func New(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, parallelErrorf(opNew, ErrInvalidWorkers)
	}

	p := &Pool{
		workers: workers,
		workC:   make(chan task, workers*2),
		slots:   make([]flagSlot, workers),
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p, nil
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers. Safe to call more than once. A closed pool still
// accepts regions but runs them on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// For executes body over [0,n) split into Split(n, Workers()) ranges, one
// range per task, and blocks until all ranges are done.
//
// body must only write indices inside its own range (or state derived from
// them); ranges never overlap, so no locking is needed.
// Returns a wrapped ErrWorkerPanic if any range panicked.
func (p *Pool) For(n int, body func(lo, hi int)) error {
	err := p.run(Split(n, p.workers), func(_ int, r Range) {
		body(r.Lo, r.Hi)
	})
	if err != nil {
		return parallelErrorf(opFor, err)
	}

	return nil
}

// ForAny is For with a logical-OR reduction: body reports one bool per
// range, and the result is true iff any range reported true. The fold runs
// after the barrier, in range order.
func (p *Pool) ForAny(n int, body func(lo, hi int) bool) (bool, error) {
	parts := Split(n, p.workers)
	for i := range parts {
		p.slots[i].set = false
	}

	err := p.run(parts, func(i int, r Range) {
		p.slots[i].set = body(r.Lo, r.Hi)
	})
	if err != nil {
		return false, parallelErrorf(opForAny, err)
	}

	found := false
	for i := range parts {
		found = found || p.slots[i].set
	}

	return found, nil
}

// run dispatches one task per range and joins them all. A single range or a
// closed pool runs inline on the caller.
func (p *Pool) run(parts []Range, fn func(i int, r Range)) error {
	switch {
	case len(parts) == 0:
		return nil
	case len(parts) == 1 || p.closed.Load():
		for i, r := range parts {
			if err := guard(func() error { fn(i, r); return nil }); err != nil {
				return err
			}
		}
		return nil
	}

	failures := make([]error, len(parts))
	var wg sync.WaitGroup
	wg.Add(len(parts))
	for i, r := range parts {
		i, r := i, r
		p.workC <- task{
			fn: func() {
				failures[i] = guard(func() error { fn(i, r); return nil })
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return err
		}
	}

	return nil
}
