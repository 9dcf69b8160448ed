// Package harness times serial and parallel kernel variants, persists their
// outputs and checks that every parallel output equals the serial one.
//
// One generic Experiment replaces per-algorithm copies of the same driver:
//
//  1. Input: load the input file of the experiment, or generate and save it
//     when missing (dataset.LoadOrGenerate*).
//  2. Serial: run the serial kernel on a private copy of the input, time it,
//     save <name>_serial.dat.
//  3. Parallel: for every configured thread count t, run the parallel kernel
//     on a fresh copy, time it, save <name>_parallel_<t>.dat.
//  4. Compare: read the saved files back and compare each parallel output to
//     the serial one (exact, or within Config.Tolerance).
//
// Derived figures: speedup = t_serial / t_parallel and
// efficiency = speedup / threads.
//
// Inputs are cloned per run so in-place kernels (the sorts) never see each
// other's output and concurrent trials never alias memory. The clock is
// injectable for tests; logging goes to an injected *log.Logger.
package harness
