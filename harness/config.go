// SPDX-License-Identifier: MIT

package harness

import (
	"io"
	"log"
	"slices"
	"time"

	"github.com/samber/lo"
)

// DefaultThreads are the thread counts of the reference runs.
var DefaultThreads = []int{2, 4}

// Config controls one harness run. The zero value is usable.
type Config struct {
	// Threads lists the thread counts to try; duplicates are dropped and the
	// rest kept in order. Empty means DefaultThreads.
	Threads []int

	// Dir receives input and output files. Empty means the working directory.
	Dir string

	// Tolerance is the relative tolerance of the output comparison;
	// 0 demands bitwise equality.
	Tolerance float64

	// Logger receives progress lines; nil discards them.
	Logger *log.Logger

	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

// resolve applies defaults and validates c.
func (c Config) resolve() (Config, error) {
	if len(c.Threads) == 0 {
		c.Threads = slices.Clone(DefaultThreads)
	}
	for _, t := range c.Threads {
		if t < 1 {
			return c, ErrInvalidThreads
		}
	}
	c.Threads = lo.Uniq(c.Threads)
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}

	return c, nil
}
