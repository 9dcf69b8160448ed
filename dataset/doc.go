// Package dataset supplies the inputs and persistence that the kernels of
// this module are benchmarked with.
//
// 🚀 What it does
//
//   - GenerateSequence / GenerateMatrix: uniform random float64 values drawn
//     from an explicitly passed random source (WithSeed / WithRand), so a test
//     or a benchmark run can be reproduced from its seed.
//   - SaveSequence / LoadSequence, SaveMatrix / LoadMatrix: loss-free
//     round trip of float64 data through files.
//   - LoadOrGenerateSequence / LoadOrGenerateMatrix: reuse an existing input
//     file, or generate and save one when it is missing, so repeated runs
//     time the same data.
//   - CompareSequences / CompareMatrices: equality of two persisted outputs,
//     exact (bitwise) or within a relative tolerance.
//
// 📦 File format
//
//	Raw little-endian IEEE-754 binary64 values, no header. A matrix is stored
//	row-major, so an r×c matrix file holds exactly r*c*8 bytes. The length of
//	a file is therefore validated against the expected shape on load.
//
// ⚙️ Usage
//
//	seq, err := dataset.GenerateSequence(10000, 0, 1000, dataset.WithSeed(42))
//	if err != nil { ... }
//	err = dataset.SaveSequence("vector.dat", seq)
//	same, err := dataset.CompareSequences("sorted_serial.dat", "sorted_parallel_4.dat", 0)
package dataset
