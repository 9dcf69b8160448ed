// Command ppbench times the serial and parallel kernels of this module,
// saves their outputs and checks that the parallel outputs equal the serial
// ones.
//
// Usage:
//
//	ppbench bubble    [--size 10000]  [--threads 2,4] [--dir .] [--seed 1]
//	ppbench matmul    [--size 1000]   ...
//	ppbench mergesort [--size 400000] ...
//	ppbench dct       [--size 200000] ...
//	ppbench all       ...
//
// Inputs are read from <dir>/<kernel>_vector.dat (or matmul_m1.dat and
// matmul_m2.dat) and generated there when missing. Outputs go to
// <kernel>_serial.dat and <kernel>_parallel_<t>.dat. The exit status is
// non-zero when any parallel output differs from the serial output.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
