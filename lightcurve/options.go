// SPDX-License-Identifier: MIT
// Package: lightcurve/lightcurve
//
// options.go - functional options for Simulate and SimulateBatch.
//
// Contract:
//   • Option constructors panic on meaningless values (nil source, nil rand,
//     negative worker count). Simulation functions never panic.
//   • Later options override earlier ones.

package lightcurve

import (
	"math/rand"
	"runtime"

	"github.com/katalvlaran/lightcurve/fourier"
)

// Option customizes a single simulation.
type Option func(*simConfig)

// simConfig holds the resolved knobs of one Simulate call.
type simConfig struct {
	src fourier.NormalSource
}

func newSimConfig(opts ...Option) simConfig {
	cfg := simConfig{src: processSource{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSource draws normals from src. Panics on nil.
func WithSource(src fourier.NormalSource) Option {
	if src == nil {
		panic("lightcurve: WithSource(nil)")
	}
	return func(c *simConfig) {
		c.src = src
	}
}

// WithRand draws normals from r. Panics on nil. r is advanced by the call.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lightcurve: WithRand(nil)")
	}
	return func(c *simConfig) {
		c.src = r
	}
}

// WithSeed draws normals from a fresh generator seeded with seed, making the
// call reproducible.
func WithSeed(seed int64) Option {
	return func(c *simConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// BatchOption customizes SimulateBatch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	seed    int64
	workers int
}

func newBatchConfig(opts ...BatchOption) batchConfig {
	cfg := batchConfig{
		seed:    defaultBatchSeed,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = defaultBatchSeed
	}

	return cfg
}

// WithBatchSeed sets the base seed from which every curve's stream is
// derived. Zero selects the default seed.
func WithBatchSeed(seed int64) BatchOption {
	return func(c *batchConfig) {
		c.seed = seed
	}
}

// WithWorkers bounds the number of curves computed concurrently.
// Zero means GOMAXPROCS. Panics if w < 0.
func WithWorkers(w int) BatchOption {
	if w < 0 {
		panic("lightcurve: WithWorkers(w<0)")
	}
	return func(c *batchConfig) {
		c.workers = w
		if c.workers == 0 {
			c.workers = runtime.GOMAXPROCS(0)
		}
	}
}
