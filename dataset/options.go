// SPDX-License-Identifier: MIT
// Package: dataset
//
// options.go: functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: the random source comes from WithSeed or
//     WithRand; without either, a fixed default seed is used.

package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithSeed uses a new *rand.Rand seeded with seed (0 maps to DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws values from r. The caller keeps ownership of r and must
// not use it concurrently with the generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the half-open sampling interval [min, max) for
// GenerateMatrix. Panics unless both bounds are finite and min < max.
func WithRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || min >= max {
		panic(fmt.Sprintf("dataset: WithRange(%g, %g)", min, max))
	}
	return func(c *config) {
		c.min, c.max = min, max
	}
}
