// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"github.com/FelippePaulo/ppc/matrix"
)

// GenerateSequence returns n independent values drawn uniformly from
// [min, max) using the configured random source.
//
// Errors: ErrInvalidLength (n < 0), ErrInvalidRange (min >= max or a
// non-finite bound).
// Complexity: O(n).
func GenerateSequence(n int, min, max float64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, datasetErrorf(methodGenerateSequence, ErrInvalidLength)
	}
	if !validRange(min, max) {
		return nil, datasetErrorf(methodGenerateSequence, ErrInvalidRange)
	}

	cfg := newConfig(opts...)
	out := make([]float64, n)
	fill(out, min, max, cfg)

	return out, nil
}

// GenerateMatrix returns a rows×cols matrix of values drawn uniformly from
// the configured range (DefaultMin..DefaultMax unless WithRange is given),
// filled in row-major order.
//
// Errors: ErrInvalidLength when rows or cols <= 0.
func GenerateMatrix(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, datasetErrorf(methodGenerateMatrix, ErrInvalidLength)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, datasetErrorf(methodGenerateMatrix, err)
	}
	cfg := newConfig(opts...)
	fill(m.RawData(), cfg.min, cfg.max, cfg)

	return m, nil
}

// fill draws len(dst) values in [min, max). Float64 is in [0,1), so the
// scaled value stays below max except for rounding at the top, which is
// clamped back into range.
func fill(dst []float64, min, max float64, cfg config) {
	width := max - min
	for i := range dst {
		v := min + cfg.rng.Float64()*width
		if v >= max {
			v = math.Nextafter(max, min)
		}
		dst[i] = v
	}
}

func validRange(min, max float64) bool {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return false
	}

	return min < max
}
