// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go: sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (datasetErrorf).
//   • Functions never panic; option constructors (WithX) do on nonsense input.

package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalidLength indicates a negative element count or non-positive shape.
var ErrInvalidLength = errors.New("dataset: invalid length")

// ErrInvalidRange indicates a sampling interval with min >= max or a
// non-finite bound.
var ErrInvalidRange = errors.New("dataset: invalid value range")

// ErrShortRead indicates that a stream ended before the requested number of
// values was read.
var ErrShortRead = errors.New("dataset: short read")

// ErrShapeMismatch indicates that a file does not hold exactly the expected
// number of values.
var ErrShapeMismatch = errors.New("dataset: file size does not match shape")

// Method tags used in wrapped errors.
const (
	methodGenerateSequence = "GenerateSequence"
	methodGenerateMatrix   = "GenerateMatrix"
	methodReadSequence     = "ReadSequence"
	methodWriteSequence    = "WriteSequence"
	methodSaveSequence     = "SaveSequence"
	methodLoadSequence     = "LoadSequence"
	methodSaveMatrix       = "SaveMatrix"
	methodLoadMatrix       = "LoadMatrix"
	methodLoadOrGenerate   = "LoadOrGenerate"
	methodCompare          = "Compare"
)

// datasetErrorf wraps err with a method tag: "<method>: <err>".
func datasetErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
