// SPDX-License-Identifier: MIT

package harness

import (
	"path/filepath"
	"slices"

	"github.com/FelippePaulo/ppc/bubblesort"
	"github.com/FelippePaulo/ppc/dataset"
	"github.com/FelippePaulo/ppc/dct"
	"github.com/FelippePaulo/ppc/matrix"
	"github.com/FelippePaulo/ppc/mergesort"
)

// Reference problem sizes.
const (
	DefaultBubbleSize    = 10000
	DefaultMatMulSize    = 1000
	DefaultMergeSortSize = 400000
	DefaultDCTSize       = 200000
)

// Experiment names; also the file prefixes.
const (
	NameBubble    = "bubble"
	NameMatMul    = "matmul"
	NameMergeSort = "mergesort"
	NameDCT       = "dct"
)

// MatMulInput holds the two factors of the matrix experiment.
type MatMulInput struct {
	A, B *matrix.Dense
}

// BubbleSort sorts a sequence of n values with odd-even transposition sort.
func BubbleSort(n int, opts ...dataset.Option) Experiment[[]float64, []float64] {
	return Experiment[[]float64, []float64]{
		Name:  NameBubble,
		Input: sequenceInput(NameBubble, n, opts),
		Clone: slices.Clone[[]float64, float64],
		Serial: func(seq []float64) ([]float64, error) {
			bubblesort.Serial(seq)
			return seq, nil
		},
		Parallel: func(seq []float64, threads int) ([]float64, error) {
			_, err := bubblesort.Parallel(seq, threads)
			return seq, err
		},
		Save:    dataset.SaveSequence,
		Compare: dataset.CompareSequences,
	}
}

// MergeSort sorts a sequence of n values; the fan-out depth of each parallel
// run follows mergesort.DepthForThreads.
func MergeSort(n int, opts ...dataset.Option) Experiment[[]float64, []float64] {
	return Experiment[[]float64, []float64]{
		Name:  NameMergeSort,
		Input: sequenceInput(NameMergeSort, n, opts),
		Clone: slices.Clone[[]float64, float64],
		Serial: func(seq []float64) ([]float64, error) {
			mergesort.Sort(seq)
			return seq, nil
		},
		Parallel: func(seq []float64, threads int) ([]float64, error) {
			return seq, mergesort.SortParallel(seq, mergesort.DepthForThreads(threads))
		},
		Save:    dataset.SaveSequence,
		Compare: dataset.CompareSequences,
	}
}

// DCT transforms a sequence of n values with the orthonormal DCT-II.
func DCT(n int, opts ...dataset.Option) Experiment[[]float64, []float64] {
	return Experiment[[]float64, []float64]{
		Name:  NameDCT,
		Input: sequenceInput(NameDCT, n, opts),
		Serial: func(seq []float64) ([]float64, error) {
			return dct.Transform(seq), nil
		},
		Parallel: dct.TransformParallel,
		Save:     dataset.SaveSequence,
		Compare:  dataset.CompareSequences,
	}
}

// MatMul multiplies two n×n matrices.
func MatMul(n int, opts ...dataset.Option) Experiment[MatMulInput, *matrix.Dense] {
	return Experiment[MatMulInput, *matrix.Dense]{
		Name: NameMatMul,
		Input: func(dir string) (MatMulInput, bool, error) {
			// Both factors draw from one stream so they differ.
			shared := append(slices.Clone(opts), dataset.WithRand(dataset.NewRand(opts...)))
			a, genA, err := dataset.LoadOrGenerateMatrix(filepath.Join(dir, NameMatMul+"_m1.dat"), n, n, shared...)
			if err != nil {
				return MatMulInput{}, false, err
			}
			b, genB, err := dataset.LoadOrGenerateMatrix(filepath.Join(dir, NameMatMul+"_m2.dat"), n, n, shared...)
			if err != nil {
				return MatMulInput{}, false, err
			}
			return MatMulInput{A: a, B: b}, genA || genB, nil
		},
		Serial: func(in MatMulInput) (*matrix.Dense, error) {
			return matrix.Mul(in.A, in.B)
		},
		Parallel: func(in MatMulInput, threads int) (*matrix.Dense, error) {
			return matrix.MulParallel(in.A, in.B, threads)
		},
		Save: dataset.SaveMatrix,
		Compare: func(pathA, pathB string, tol float64) (bool, error) {
			return dataset.CompareMatrices(pathA, pathB, n, n, tol)
		},
	}
}

func sequenceInput(name string, n int, opts []dataset.Option) func(string) ([]float64, bool, error) {
	return func(dir string) ([]float64, bool, error) {
		return dataset.LoadOrGenerateSequence(
			filepath.Join(dir, name+"_vector.dat"), n, dataset.DefaultMin, dataset.DefaultMax, opts...)
	}
}
