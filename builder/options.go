// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors.

package builder

import (
	"context"
	"math/rand"
)

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRelabel permutes vertex indices after construction so that generated
// topologies do not always start at vertex 0. Requires an RNG.
func WithRelabel() BuilderOption {
	return func(c *builderConfig) {
		c.relabel = true
	}
}

// WithContext cancels the reachability searches run by RandomInstance.
func WithContext(ctx context.Context) BuilderOption {
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}
