// SPDX-License-Identifier: MIT

package dataset

import "math/rand"

// Deterministic defaults.
const (
	// DefaultSeed is used when no random source is configured and for seed == 0.
	DefaultSeed int64 = 1

	// DefaultMin and DefaultMax bound GenerateMatrix values when WithRange is not given.
	DefaultMin = 0.0
	DefaultMax = 1000.0
)

// config is the resolved generator configuration.
type config struct {
	rng      *rand.Rand
	min, max float64
}

// newConfig applies opts in order (last wins) over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{min: DefaultMin, max: DefaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(DefaultSeed)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 maps to DefaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewRand resolves opts and returns the random source they select. Passing it
// back through WithRand lets several generator calls draw from one stream.
func NewRand(opts ...Option) *rand.Rand {
	return newConfig(opts...).rng
}
