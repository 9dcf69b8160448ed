// SPDX-License-Identifier: MIT

package mergesort

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange indicates bounds outside the sequence or lo > hi+1.
	ErrInvalidRange = errors.New("mergesort: invalid range")

	// ErrInvalidDepth indicates a negative fan-out depth.
	ErrInvalidDepth = errors.New("mergesort: depth must be >= 0")
)

const (
	opSerial   = "Serial"
	opParallel = "Parallel"
)

func sortErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rangeErrorf attaches the offending bounds to ErrInvalidRange.
func rangeErrorf(tag string, lo, hi, n int) error {
	return fmt.Errorf("%s(lo=%d, hi=%d, len=%d): %w", tag, lo, hi, n, ErrInvalidRange)
}
