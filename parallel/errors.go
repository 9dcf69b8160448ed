// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkers is returned by New when the requested worker count is < 1.
var ErrInvalidWorkers = errors.New("parallel: worker count must be >= 1")

// ErrWorkerPanic reports that a task panicked. The region was fully joined
// before this error was returned.
var ErrWorkerPanic = errors.New("parallel: task panicked")

// Operation tags used for error wrapping.
const (
	opNew    = "New"
	opFor    = "For"
	opForAny = "ForAny"
	opFork   = "Fork"
)

// parallelErrorf wraps err with an operation tag; callers match with errors.Is.
func parallelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// guard runs fn and converts a panic into ErrWorkerPanic.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	return fn()
}
