// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped as "<Op>: <sentinel>"; tests
// check them via errors.Is. Nothing in this package panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul
	// where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDataLength indicates that a backing slice does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrInvalidThreads indicates a thread count < 1 for a parallel kernel.
	ErrInvalidThreads = errors.New("matrix: thread count must be >= 1")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense     = "NewDense"
	opNewDenseFrom = "NewDenseFrom"
	opIdentity     = "Identity"
	opMul          = "Mul"
	opMulParallel  = "MulParallel"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method and index context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
