// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math"
	"path/filepath"
	"time"
)

// Experiment describes one kernel pair. In is the input type, Out the output
// type (they coincide for the in-place sorts).
type Experiment[In, Out any] struct {
	// Name prefixes every file of the experiment.
	Name string

	// Input loads the input from dir, or generates and saves it there;
	// generated reports which branch ran.
	Input func(dir string) (in In, generated bool, err error)

	// Clone returns an independent copy of the input for one run. Nil means
	// the kernels treat their input as read-only and share it.
	Clone func(In) In

	Serial   func(In) (Out, error)
	Parallel func(in In, threads int) (Out, error)

	// Save persists an output; Compare reads two saved outputs back.
	Save    func(path string, out Out) error
	Compare func(pathA, pathB string, tol float64) (bool, error)
}

// Trial is the outcome of one parallel run.
type Trial struct {
	Threads    int
	Elapsed    time.Duration
	Speedup    float64
	Efficiency float64
	Equal      bool
	Path       string
}

// Report is the outcome of Run.
type Report struct {
	Name       string
	Serial     time.Duration
	SerialPath string
	Trials     []Trial
}

// Run executes exp under cfg and returns the timings and comparison results.
// A parallel output that differs from the serial one is reported through
// Trial.Equal and Report.Err, not as a Run error; Run fails only when a
// step (input, kernel, save, compare) fails.
func Run[In, Out any](exp Experiment[In, Out], cfg Config) (*Report, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, harnessErrorf("config", err)
	}
	if exp.Input == nil || exp.Serial == nil || exp.Parallel == nil || exp.Save == nil || exp.Compare == nil {
		return nil, harnessErrorf(exp.Name, ErrIncompleteExperiment)
	}
	clone := exp.Clone
	if clone == nil {
		clone = func(in In) In { return in }
	}
	logf := cfg.Logger.Printf

	input, generated, err := exp.Input(cfg.Dir)
	if err != nil {
		return nil, harnessErrorf("input", err)
	}
	if generated {
		logf("generated new %s input in %s", exp.Name, cfg.Dir)
	} else {
		logf("loaded %s input from %s", exp.Name, cfg.Dir)
	}

	rep := &Report{Name: exp.Name, SerialPath: outputPath(cfg.Dir, exp.Name, 0)}

	logf("running serial %s", exp.Name)
	serialIn := clone(input)
	start := cfg.Clock()
	out, err := exp.Serial(serialIn)
	rep.Serial = cfg.Clock().Sub(start)
	if err != nil {
		return nil, harnessErrorf("serial", err)
	}
	logf("serial time: %.6f seconds", rep.Serial.Seconds())
	if err = exp.Save(rep.SerialPath, out); err != nil {
		return nil, harnessErrorf("save serial", err)
	}

	for _, threads := range cfg.Threads {
		logf("running parallel %s (%d threads)", exp.Name, threads)
		parIn := clone(input)
		start = cfg.Clock()
		out, err = exp.Parallel(parIn, threads)
		elapsed := cfg.Clock().Sub(start)
		if err != nil {
			return nil, harnessErrorf(fmt.Sprintf("parallel(%d)", threads), err)
		}

		trial := Trial{
			Threads: threads,
			Elapsed: elapsed,
			Speedup: Speedup(rep.Serial, elapsed),
			Path:    outputPath(cfg.Dir, exp.Name, threads),
		}
		trial.Efficiency = Efficiency(trial.Speedup, threads)
		logf("parallel time (%d threads): %.6f seconds, speedup %.3f, efficiency %.3f",
			threads, elapsed.Seconds(), trial.Speedup, trial.Efficiency)

		if err = exp.Save(trial.Path, out); err != nil {
			return nil, harnessErrorf("save parallel", err)
		}
		rep.Trials = append(rep.Trials, trial)
	}

	for i := range rep.Trials {
		tr := &rep.Trials[i]
		tr.Equal, err = exp.Compare(rep.SerialPath, tr.Path, cfg.Tolerance)
		if err != nil {
			return nil, harnessErrorf("compare", err)
		}
		if tr.Equal {
			logf("OK! serial and parallel (%d threads) outputs are equal", tr.Threads)
		} else {
			logf("ERROR! outputs are NOT equal for %d threads", tr.Threads)
		}
	}

	return rep, nil
}

// Speedup returns serial/parallel. A zero parallel time yields +Inf.
func Speedup(serial, parallel time.Duration) float64 {
	if parallel <= 0 {
		return math.Inf(1)
	}

	return serial.Seconds() / parallel.Seconds()
}

// Efficiency returns speedup/threads.
func Efficiency(speedup float64, threads int) float64 {
	return speedup / float64(threads)
}

// outputPath names the saved output; threads == 0 is the serial run.
func outputPath(dir, name string, threads int) string {
	if threads == 0 {
		return filepath.Join(dir, name+"_serial.dat")
	}

	return filepath.Join(dir, fmt.Sprintf("%s_parallel_%d.dat", name, threads))
}
