// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Keep all data finite so tolerance checks stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/FelippePaulo/ppc/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	return m
}

// fillDenseRand fills m with deterministic values in [-1,1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
}

// naiveMul is an independent reference product built on At/Set only.
func naiveMul(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	out := mustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum float64
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(tb, err)
				bv, err := b.At(k, j)
				require.NoError(tb, err)
				sum += av * bv
			}
			require.NoError(tb, out.Set(i, j, sum))
		}
	}
	return out
}
