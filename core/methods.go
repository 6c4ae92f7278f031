// SPDX-License-Identifier: MIT
// Package: duopath/core
//
// methods.go - mutation and query methods of Graph.
// Determinism:
//   - Neighbors() and Adjacency() return ascending vertex indices.
//   - Edges() returns pairs (u<v) sorted by u, then v.
// Concurrency:
//   - Mutators hold mu for writing, queries hold mu for reading.

package core

import "fmt"

// Order returns the number of vertices n.
func (g *Graph) Order() int {
	// n is immutable after construction; no lock needed.
	return g.n
}

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// AddEdge inserts the undirected edge {u,v}.
//
// Returns added=false with a nil error when the edge already exists, so
// loaders can feed repeated edges without special casing.
//
// Errors:
//   - ErrVertexNotFound: u or v outside 0..n-1.
//   - ErrLoopNotAllowed: u == v.
//
// Complexity: O(log d).
func (g *Graph) AddEdge(u, v int) (added bool, err error) {
	if err = g.checkVertex(u); err != nil {
		return false, err
	}
	if err = g.checkVertex(v); err != nil {
		return false, err
	}
	if u == v {
		return false, fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nbrs[u].Contains(v) {
		return false, nil
	}
	g.nbrs[u].Add(v)
	g.nbrs[v].Add(u)
	g.m++
	g.frozen = nil

	return true, nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nbrs[u].Contains(v)
}

// Neighbors returns N(v) in ascending order as a fresh slice.
//
// Errors:
//   - ErrVertexNotFound: v outside 0..n-1.
//
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return setToInts(g.nbrs[v].Values()), nil
}

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nbrs[v].Size(), nil
}

// Adjacency returns a read-only snapshot adj where adj[v] = N(v) ascending.
//
// The snapshot is cached and shared between callers until the next successful
// AddEdge; callers MUST NOT modify it. Searches take it once and index plain
// slices afterwards.
//
// Complexity: O(n + m) when rebuilding, O(1) otherwise.
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	if g.frozen != nil || g.n == 0 {
		adj := g.frozen
		g.mu.RUnlock()
		if adj == nil {
			adj = [][]int{}
		}
		return adj
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	// another writer may have rebuilt it between the two locks
	if g.frozen == nil {
		adj := make([][]int, g.n)
		for v := 0; v < g.n; v++ {
			adj[v] = setToInts(g.nbrs[v].Values())
		}
		g.frozen = adj
	}

	return g.frozen
}

// Edges returns every edge once as (u,v) with u < v, sorted lexicographically.
// Complexity: O(n + m).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		it := g.nbrs[u].Iterator()
		for it.Next() {
			if v := it.Value().(int); v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// CheckSymmetric verifies v ∈ N(u) ⟺ u ∈ N(v) for every stored entry.
// It can only fail for graphs whose sets were filled outside AddEdge.
func (g *Graph) CheckSymmetric() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.checkSymmetricLocked()
}

func (g *Graph) checkSymmetricLocked() error {
	for u := 0; u < g.n; u++ {
		it := g.nbrs[u].Iterator()
		for it.Next() {
			v := it.Value().(int)
			if !g.nbrs[v].Contains(u) {
				return fmt.Errorf("core: %d→%d without %d→%d: %w", u, v, v, u, ErrAsymmetric)
			}
		}
	}

	return nil
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("core: vertex %d not in [0,%d): %w", v, g.n, ErrVertexNotFound)
	}

	return nil
}

// setToInts converts treeset values (already ascending) into []int.
func setToInts(vals []interface{}) []int {
	out := make([]int, len(vals))
	for i, x := range vals {
		out[i] = x.(int)
	}

	return out
}
