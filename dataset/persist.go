// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/FelippePaulo/ppc/matrix"
)

// valueSize is the on-disk size of one float64.
const valueSize = 8

// WriteSequence writes seq to w as little-endian binary64 values.
func WriteSequence(w io.Writer, seq []float64) error {
	bw := bufio.NewWriter(w)
	var buf [valueSize]byte
	for _, v := range seq {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return datasetErrorf(methodWriteSequence, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return datasetErrorf(methodWriteSequence, err)
	}

	return nil
}

// ReadSequence reads exactly n values from r.
// Errors: ErrInvalidLength (n < 0), ErrShortRead when r ends early.
func ReadSequence(r io.Reader, n int) ([]float64, error) {
	if n < 0 {
		return nil, datasetErrorf(methodReadSequence, ErrInvalidLength)
	}

	br := bufio.NewReader(r)
	out := make([]float64, n)
	var buf [valueSize]byte
	for i := range out {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%s: value %d of %d: %w", methodReadSequence, i, n, ErrShortRead)
			}
			return nil, datasetErrorf(methodReadSequence, err)
		}
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
	}

	return out, nil
}

// SaveSequence writes seq to the file at path, replacing it.
func SaveSequence(path string, seq []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return datasetErrorf(methodSaveSequence, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = datasetErrorf(methodSaveSequence, cerr)
		}
	}()

	if err = WriteSequence(f, seq); err != nil {
		return datasetErrorf(methodSaveSequence, err)
	}

	return nil
}

// LoadSequence reads a file holding exactly n values.
// Errors: ErrShapeMismatch when the file size is not n*8 bytes.
func LoadSequence(path string, n int) ([]float64, error) {
	seq, err := loadExact(path, n)
	if err != nil {
		return nil, datasetErrorf(methodLoadSequence, err)
	}

	return seq, nil
}

// SaveMatrix writes m row-major to the file at path.
func SaveMatrix(path string, m *matrix.Dense) error {
	if m == nil {
		return datasetErrorf(methodSaveMatrix, matrix.ErrNilMatrix)
	}
	if err := SaveSequence(path, m.RawData()); err != nil {
		return datasetErrorf(methodSaveMatrix, err)
	}

	return nil
}

// LoadMatrix reads a rows×cols matrix saved by SaveMatrix.
// Errors: ErrInvalidLength for non-positive shapes, ErrShapeMismatch.
func LoadMatrix(path string, rows, cols int) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, datasetErrorf(methodLoadMatrix, ErrInvalidLength)
	}
	data, err := loadExact(path, rows*cols)
	if err != nil {
		return nil, datasetErrorf(methodLoadMatrix, err)
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, datasetErrorf(methodLoadMatrix, err)
	}

	return m, nil
}

// LoadOrGenerateSequence loads n values from path, or, when the file does
// not exist, generates them with GenerateSequence and saves them there.
// generated reports which branch ran.
func LoadOrGenerateSequence(path string, n int, min, max float64, opts ...Option) (seq []float64, generated bool, err error) {
	exists, err := fileExists(path)
	if err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}
	if exists {
		seq, err = LoadSequence(path, n)
		if err != nil {
			return nil, false, datasetErrorf(methodLoadOrGenerate, err)
		}
		return seq, false, nil
	}

	if seq, err = GenerateSequence(n, min, max, opts...); err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}
	if err = SaveSequence(path, seq); err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}

	return seq, true, nil
}

// LoadOrGenerateMatrix is LoadOrGenerateSequence for rows×cols matrices.
func LoadOrGenerateMatrix(path string, rows, cols int, opts ...Option) (m *matrix.Dense, generated bool, err error) {
	exists, err := fileExists(path)
	if err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}
	if exists {
		m, err = LoadMatrix(path, rows, cols)
		if err != nil {
			return nil, false, datasetErrorf(methodLoadOrGenerate, err)
		}
		return m, false, nil
	}

	if m, err = GenerateMatrix(rows, cols, opts...); err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}
	if err = SaveMatrix(path, m); err != nil {
		return nil, false, datasetErrorf(methodLoadOrGenerate, err)
	}

	return m, true, nil
}

// loadExact opens path, checks that it holds exactly n values and reads them.
func loadExact(path string, n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() != int64(n)*valueSize {
		return nil, fmt.Errorf("%s has %d bytes, want %d: %w", path, info.Size(), int64(n)*valueSize, ErrShapeMismatch)
	}

	return ReadSequence(f, n)
}

// countValues returns the number of float64 values stored in path.
func countValues(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.Size()%valueSize != 0 {
		return 0, fmt.Errorf("%s has %d bytes: %w", path, info.Size(), ErrShapeMismatch)
	}

	return int(info.Size() / valueSize), nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
