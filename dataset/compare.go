// SPDX-License-Identifier: MIT

package dataset

import "math"

// Equal reports whether a and b have the same length and matching values.
//
// tol == 0 demands bitwise equality (so NaN equals an identical NaN and
// +0 differs from -0). tol > 0 accepts |x-y| <= tol·max(|x|,|y|), with NaN
// matching only NaN and infinities matching only the same infinity.
func Equal(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if !valueEqual(x, b[i], tol) {
			return false
		}
	}

	return true
}

func valueEqual(x, y, tol float64) bool {
	if tol <= 0 {
		return math.Float64bits(x) == math.Float64bits(y)
	}
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x == y
	}

	return math.Abs(x-y) <= tol*math.Max(math.Abs(x), math.Abs(y))
}

// CompareSequences loads the sequences stored at pathA and pathB and reports
// whether they are Equal under tol. Files of different lengths are unequal.
func CompareSequences(pathA, pathB string, tol float64) (bool, error) {
	na, err := countValues(pathA)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}
	nb, err := countValues(pathB)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}
	if na != nb {
		return false, nil
	}

	a, err := LoadSequence(pathA, na)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}
	b, err := LoadSequence(pathB, nb)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}

	return Equal(a, b, tol), nil
}

// CompareMatrices loads two rows×cols matrices and reports whether they are
// Equal under tol. A file that does not match the shape is an error
// (ErrShapeMismatch).
func CompareMatrices(pathA, pathB string, rows, cols int, tol float64) (bool, error) {
	a, err := LoadMatrix(pathA, rows, cols)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}
	b, err := LoadMatrix(pathB, rows, cols)
	if err != nil {
		return false, datasetErrorf(methodCompare, err)
	}

	return Equal(a.RawData(), b.RawData(), tol), nil
}
