// SPDX-License-Identifier: MIT

package bubblesort

import (
	"errors"
	"fmt"
)

// ErrInvalidThreads is returned when the requested thread count is < 1.
var ErrInvalidThreads = errors.New("bubblesort: thread count must be >= 1")

const opParallel = "Parallel"

func sortErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
