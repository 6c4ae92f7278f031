// SPDX-License-Identifier: MIT
// Package: duopath/core
//
// types.go - Graph type, sentinel errors and constructors.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a graph was requested with fewer than zero vertices.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrVertexNotFound indicates an operation referenced an index outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates foreign adjacency data where v ∈ N(u) but u ∉ N(v).
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Graph is an undirected, unweighted simple graph over vertices 0..n-1.
//
// nbrs holds one ordered integer set per vertex. frozen caches the slice form
// handed out by Adjacency and is dropped on every successful mutation.
type Graph struct {
	mu sync.RWMutex

	n      int            // vertex count, immutable
	m      int            // number of distinct undirected edges
	nbrs   []*treeset.Set // nbrs[v] = ordered set of neighbors of v
	frozen [][]int        // cached Adjacency() snapshot, nil when stale
}

// NewGraph creates an edgeless graph with n vertices.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{
		n:    n,
		nbrs: make([]*treeset.Set, n),
	}
	for v := 0; v < n; v++ {
		g.nbrs[v] = treeset.NewWithIntComparator()
	}

	return g, nil
}

// FromAdjacency builds a Graph from raw adjacency lists, e.g. produced by a
// caller that never used AddEdge. Duplicate entries collapse; any self-loop
// returns ErrLoopNotAllowed, any out-of-range entry ErrVertexNotFound and any
// one-sided entry ErrAsymmetric.
//
// Complexity: O(n + m log d).
func FromAdjacency(adj [][]int) (*Graph, error) {
	g, err := NewGraph(len(adj))
	if err != nil {
		return nil, err
	}
	for u, list := range adj {
		for _, v := range list {
			if v < 0 || v >= g.n {
				return nil, fmt.Errorf("core: FromAdjacency: %d→%d: %w", u, v, ErrVertexNotFound)
			}
			if u == v {
				return nil, fmt.Errorf("core: FromAdjacency: %d→%d: %w", u, v, ErrLoopNotAllowed)
			}
			g.nbrs[u].Add(v)
		}
	}
	if err = g.checkSymmetricLocked(); err != nil {
		return nil, err
	}
	for u := 0; u < g.n; u++ {
		g.m += g.nbrs[u].Size()
	}
	g.m /= 2

	return g, nil
}
