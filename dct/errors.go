// SPDX-License-Identifier: MIT

package dct

import (
	"errors"
	"fmt"
)

// ErrInvalidThreads is returned when the requested thread count is < 1.
var ErrInvalidThreads = errors.New("dct: thread count must be >= 1")

const (
	opTransformParallel = "TransformParallel"
	opInverseParallel   = "InverseParallel"
)

func dctErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
