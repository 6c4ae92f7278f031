// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// api.go - Canvas, Constructor and the BuildGraph orchestrator.
//
// Contract:
//   - BuildGraph resolves options once and runs constructors in order.
//   - Each constructor owns the vertex range it allocates; edges never cross
//     ranges, so the result is the disjoint union of all topologies.
//   - Same inputs, options and seed ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/duopath/core"
)

// Canvas collects vertices and edges before the graph is materialised.
type Canvas struct {
	order int
	edges [][2]int
	lo    int // first vertex of the range being built
}

// AddVertices allocates k new vertices and returns the index of the first.
func (c *Canvas) AddVertices(k int) int {
	first := c.order
	c.order += k

	return first
}

// AddEdge records the undirected edge {u,v}. Both endpoints must belong to the
// calling constructor's range and differ.
func (c *Canvas) AddEdge(u, v int) error {
	if u == v || u < c.lo || v < c.lo || u >= c.order || v >= c.order {
		return fmt.Errorf("AddEdge(%d,%d) outside [%d,%d): %w", u, v, c.lo, c.order, ErrConstructFailed)
	}
	c.edges = append(c.edges, [2]int{u, v})

	return nil
}

// Order returns the number of vertices allocated so far.
func (c *Canvas) Order() int { return c.order }

// Constructor allocates a vertex range on the canvas and emits its edges in a
// stable, documented order. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(c *Canvas, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting core.Graph. Constructor
// errors are wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	c := &Canvas{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		c.lo = c.order
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	label := identity
	if cfg.relabel {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: relabel: %w", ErrNeedRandSource)
		}
		perm := cfg.rng.Perm(c.order)
		label = func(v int) int { return perm[v] }
	}

	g, err := core.NewGraph(c.order)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, e := range c.edges {
		if _, err = g.AddEdge(label(e[0]), label(e[1])); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

func identity(v int) int { return v }
