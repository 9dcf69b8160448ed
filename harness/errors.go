// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreads indicates a configured thread count < 1.
	ErrInvalidThreads = errors.New("harness: thread count must be >= 1")

	// ErrIncompleteExperiment indicates an Experiment with a missing function.
	ErrIncompleteExperiment = errors.New("harness: experiment is missing a step")

	// ErrMismatch reports that at least one parallel output differs from the
	// serial output.
	ErrMismatch = errors.New("harness: parallel output differs from serial")
)

func harnessErrorf(step string, err error) error {
	return fmt.Errorf("%s: %w", step, err)
}
