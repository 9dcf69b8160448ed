package dataset_test

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/FelippePaulo/ppc/dataset"
	"github.com/FelippePaulo/ppc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateSequence_SeedDeterminism: same seed, same values.
func TestGenerateSequence_SeedDeterminism(t *testing.T) {
	a, err := dataset.GenerateSequence(100, 0, 1000, dataset.WithSeed(42))
	require.NoError(t, err)
	b, err := dataset.GenerateSequence(100, 0, 1000, dataset.WithSeed(42))
	require.NoError(t, err)
	c, err := dataset.GenerateSequence(100, 0, 1000, dataset.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestGenerateSequence_ZeroSeedIsDefault maps seed 0 and "no option" to DefaultSeed.
func TestGenerateSequence_ZeroSeedIsDefault(t *testing.T) {
	a, err := dataset.GenerateSequence(10, -1, 1, dataset.WithSeed(0))
	require.NoError(t, err)
	b, err := dataset.GenerateSequence(10, -1, 1)
	require.NoError(t, err)
	c, err := dataset.GenerateSequence(10, -1, 1, dataset.WithSeed(dataset.DefaultSeed))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

// TestGenerateSequence_Bounds keeps every value inside [min, max).
func TestGenerateSequence_Bounds(t *testing.T) {
	seq, err := dataset.GenerateSequence(5000, -3, 7, dataset.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	require.Len(t, seq, 5000)
	for _, v := range seq {
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 7.0)
	}

	empty, err := dataset.GenerateSequence(0, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestGenerateSequence_InvalidArguments covers length and range validation.
func TestGenerateSequence_InvalidArguments(t *testing.T) {
	_, err := dataset.GenerateSequence(-1, 0, 1)
	require.ErrorIs(t, err, dataset.ErrInvalidLength)

	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err = dataset.GenerateSequence(3, r[0], r[1])
		require.ErrorIs(t, err, dataset.ErrInvalidRange, "range %v", r)
	}
}

// TestGenerateMatrix uses the configured range and validates the shape.
func TestGenerateMatrix(t *testing.T) {
	m, err := dataset.GenerateMatrix(3, 4, dataset.WithSeed(5), dataset.WithRange(10, 11))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	for _, v := range m.RawData() {
		assert.True(t, v >= 10 && v < 11, "value %g out of range", v)
	}

	_, err = dataset.GenerateMatrix(0, 4)
	require.ErrorIs(t, err, dataset.ErrInvalidLength)
}

// TestOptionPanics: option constructors reject nonsense eagerly.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { dataset.WithRand(nil) })
	assert.Panics(t, func() { dataset.WithRange(1, 1) })
	assert.Panics(t, func() { dataset.WithRange(math.Inf(-1), 0) })
}

// TestSequenceRoundTrip is loss-free for every float64 class.
func TestSequenceRoundTrip(t *testing.T) {
	seq := []float64{
		0, math.Copysign(0, -1), 1.5, -2.25, math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(), 1.0 / 3,
	}
	path := filepath.Join(t.TempDir(), "seq.dat")
	require.NoError(t, dataset.SaveSequence(path, seq))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, len(seq)*8, info.Size())

	back, err := dataset.LoadSequence(path, len(seq))
	require.NoError(t, err)
	assert.True(t, dataset.Equal(seq, back, 0), "round trip must be bitwise exact")
}

// TestReadSequence_ShortRead reports truncated streams.
func TestReadSequence_ShortRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.WriteSequence(&buf, []float64{1, 2}))
	buf.Truncate(12)

	_, err := dataset.ReadSequence(&buf, 2)
	require.ErrorIs(t, err, dataset.ErrShortRead)

	_, err = dataset.ReadSequence(&buf, -1)
	require.ErrorIs(t, err, dataset.ErrInvalidLength)
}

// TestLoadSequence_ShapeMismatch rejects files of the wrong size.
func TestLoadSequence_ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.dat")
	require.NoError(t, dataset.SaveSequence(path, []float64{1, 2, 3}))

	_, err := dataset.LoadSequence(path, 4)
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)
	_, err = dataset.LoadMatrix(path, 2, 2)
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)
}

// TestMatrixRoundTrip saves and reloads a matrix.
func TestMatrixRoundTrip(t *testing.T) {
	m, err := dataset.GenerateMatrix(4, 3, dataset.WithSeed(77))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "m.dat")
	require.NoError(t, dataset.SaveMatrix(path, m))

	back, err := dataset.LoadMatrix(path, 4, 3)
	require.NoError(t, err)
	assert.True(t, m.Equal(back))

	require.ErrorIs(t, dataset.SaveMatrix(path, nil), matrix.ErrNilMatrix)
}

// TestLoadOrGenerateSequence generates once, then reuses the file.
func TestLoadOrGenerateSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector.dat")

	first, generated, err := dataset.LoadOrGenerateSequence(path, 50, 0, 1000, dataset.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, generated)

	second, generated, err := dataset.LoadOrGenerateSequence(path, 50, 0, 1000, dataset.WithSeed(4))
	require.NoError(t, err)
	assert.False(t, generated, "existing file must be loaded, not regenerated")
	assert.Equal(t, first, second)

	_, _, err = dataset.LoadOrGenerateSequence(path, 51, 0, 1000)
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)
}

// TestLoadOrGenerateMatrix mirrors the sequence behavior.
func TestLoadOrGenerateMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m1.dat")

	first, generated, err := dataset.LoadOrGenerateMatrix(path, 5, 5, dataset.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, generated)

	second, generated, err := dataset.LoadOrGenerateMatrix(path, 5, 5)
	require.NoError(t, err)
	assert.False(t, generated)
	assert.True(t, first.Equal(second))
}

// TestEqual covers exact and tolerant comparisons.
func TestEqual(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		a, b []float64
		tol  float64
		want bool
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 0, true},
		{"length", []float64{1}, []float64{1, 2}, 0, false},
		{"one ulp exact", []float64{1}, []float64{math.Nextafter(1, 2)}, 0, false},
		{"one ulp tolerant", []float64{1}, []float64{math.Nextafter(1, 2)}, 1e-12, true},
		{"signed zero exact", []float64{0}, []float64{math.Copysign(0, -1)}, 0, false},
		{"nan tolerant", []float64{nan}, []float64{nan}, 1e-9, true},
		{"nan vs number", []float64{nan}, []float64{1}, 1e-9, false},
		{"inf", []float64{math.Inf(1)}, []float64{math.Inf(1)}, 1e-9, true},
		{"far apart", []float64{1}, []float64{1.1}, 1e-9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dataset.Equal(tc.a, tc.b, tc.tol))
		})
	}
}

// TestCompareFiles compares persisted sequences and matrices.
func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.dat")
	b := filepath.Join(dir, "b.dat")
	c := filepath.Join(dir, "c.dat")
	short := filepath.Join(dir, "short.dat")
	require.NoError(t, dataset.SaveSequence(a, []float64{1, 2, 3, 4}))
	require.NoError(t, dataset.SaveSequence(b, []float64{1, 2, 3, 4}))
	require.NoError(t, dataset.SaveSequence(c, []float64{1, 2, 3, 5}))
	require.NoError(t, dataset.SaveSequence(short, []float64{1, 2, 3}))

	same, err := dataset.CompareSequences(a, b, 0)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = dataset.CompareSequences(a, c, 0)
	require.NoError(t, err)
	assert.False(t, same)

	same, err = dataset.CompareSequences(a, short, 0)
	require.NoError(t, err)
	assert.False(t, same, "different lengths are unequal")

	same, err = dataset.CompareMatrices(a, b, 2, 2, 0)
	require.NoError(t, err)
	assert.True(t, same)

	_, err = dataset.CompareMatrices(a, short, 2, 2, 0)
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)

	_, err = dataset.CompareSequences(a, filepath.Join(dir, "missing.dat"), 0)
	require.ErrorIs(t, err, os.ErrNotExist)
}
