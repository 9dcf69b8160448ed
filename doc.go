// Package ppc collects four numeric kernels, each in a serial and a parallel
// variant, together with the harness that times the two variants against
// each other and checks that they agree.
//
// Kernels:
//
//	bubblesort/   odd-even transposition sort, one worker per pair block
//	matrix/       dense row-major matrices and C = A·B over the (i,j) space
//	mergesort/    top-down merge sort with a bounded fork/join depth
//	dct/          orthonormal DCT-II and its inverse, one coefficient per cell
//
// Support:
//
//	parallel/     fixed-size worker pool, static range partitioning, Fork
//	dataset/      seeded generators, binary float64 files, output comparison
//	harness/      serial/parallel timing, speedup and efficiency reports
//	cmd/ppbench   command line driver for the harness
//
// Every parallel variant produces output bitwise identical to its serial
// counterpart: the work split changes which goroutine computes a value, never
// the order of the floating-point operations that compute it.
//
//	go install github.com/FelippePaulo/ppc/cmd/ppbench@latest
//	ppbench all --threads 2,4
package ppc
