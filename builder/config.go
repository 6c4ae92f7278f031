package builder

import (
	"context"
	"math/rand"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// relabel applies a random permutation to vertex indices in BuildGraph.
	relabel bool
	// ctx bounds the reachability searches of RandomInstance; nil means none.
	ctx context.Context
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
