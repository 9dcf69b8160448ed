// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/FelippePaulo/ppc/dataset"
	"github.com/FelippePaulo/ppc/harness"
	"github.com/spf13/cobra"
)

// options are the flags shared by every subcommand.
type options struct {
	dir       string
	threads   []int
	seed      int64
	tolerance float64
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "ppbench",
		Short:         "Benchmark serial against parallel numeric kernels",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dir, "dir", ".", "directory for input and output files")
	pf.IntSliceVar(&opts.threads, "threads", harness.DefaultThreads, "thread counts of the parallel runs")
	pf.Int64Var(&opts.seed, "seed", dataset.DefaultSeed, "seed for generated inputs; 0 picks a time-based seed")
	pf.Float64Var(&opts.tolerance, "tolerance", 0, "relative tolerance of the output comparison; 0 demands exact equality")

	root.AddCommand(
		kernelCmd(opts, harness.NameBubble, "Odd-even transposition sort", harness.DefaultBubbleSize,
			func(n int, o ...dataset.Option) runner { return runnerFor(harness.BubbleSort(n, o...)) }),
		kernelCmd(opts, harness.NameMatMul, "Square matrix multiplication (size is the side length)", harness.DefaultMatMulSize,
			func(n int, o ...dataset.Option) runner { return runnerFor(harness.MatMul(n, o...)) }),
		kernelCmd(opts, harness.NameMergeSort, "Top-down merge sort", harness.DefaultMergeSortSize,
			func(n int, o ...dataset.Option) runner { return runnerFor(harness.MergeSort(n, o...)) }),
		kernelCmd(opts, harness.NameDCT, "Orthonormal DCT-II", harness.DefaultDCTSize,
			func(n int, o ...dataset.Option) runner { return runnerFor(harness.DCT(n, o...)) }),
		allCmd(opts),
	)

	return root
}

// runner runs one experiment with a resolved configuration.
type runner func(harness.Config) (*harness.Report, error)

func runnerFor[In, Out any](exp harness.Experiment[In, Out]) runner {
	return func(cfg harness.Config) (*harness.Report, error) {
		return harness.Run(exp, cfg)
	}
}

type factory func(n int, opts ...dataset.Option) runner

func kernelCmd(opts *options, name, short string, defaultSize int, build factory) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 1 {
				return fmt.Errorf("--size must be >= 1, got %d", size)
			}
			return execute(cmd, opts, []runner{build(size, opts.datasetOptions(cmd)...)})
		},
	}
	cmd.Flags().IntVar(&size, "size", defaultSize, "problem size")

	return cmd
}

func allCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every kernel at its reference size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := opts.datasetOptions(cmd)
			return execute(cmd, opts, []runner{
				runnerFor(harness.BubbleSort(harness.DefaultBubbleSize, d...)),
				runnerFor(harness.MatMul(harness.DefaultMatMulSize, d...)),
				runnerFor(harness.MergeSort(harness.DefaultMergeSortSize, d...)),
				runnerFor(harness.DCT(harness.DefaultDCTSize, d...)),
			})
		},
	}
}

// datasetOptions resolves --seed, logging the seed actually used.
func (o *options) datasetOptions(cmd *cobra.Command) []dataset.Option {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		fmt.Fprintf(cmd.ErrOrStderr(), "using seed %d\n", seed)
	}

	return []dataset.Option{dataset.WithSeed(seed)}
}

// execute runs every experiment, prints each report and joins the
// mismatches of all of them into the returned error.
func execute(cmd *cobra.Command, opts *options, runners []runner) error {
	cfg := harness.Config{
		Threads:   opts.threads,
		Dir:       opts.dir,
		Tolerance: opts.tolerance,
		Logger:    log.New(cmd.ErrOrStderr(), "ppbench: ", log.LstdFlags),
	}

	var mismatches []error
	for _, run := range runners {
		rep, err := run(cfg)
		if err != nil {
			return err
		}
		if err = rep.Write(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		mismatches = append(mismatches, rep.Err())
	}

	return errors.Join(mismatches...)
}
