// SPDX-License-Identifier: MIT

package parallel

import "golang.org/x/sync/errgroup"

// Fork runs left and right as two parallel sections and returns after both
// have finished. The first error (or recovered panic) is returned only once
// the sibling has been joined, so no goroutine outlives the call.
func Fork(left, right func() error) error {
	var g errgroup.Group
	g.Go(func() error { return guard(left) })
	g.Go(func() error { return guard(right) })

	if err := g.Wait(); err != nil {
		return parallelErrorf(opFork, err)
	}

	return nil
}
