// Package core provides the in-memory graph model used by every search in
// duopath: a simple undirected, unweighted graph over dense vertex indices.
//
// The Graph G = (V,E) has the following contract:
//
//   - Vertices are the integers 0..n-1, fixed at construction (NewGraph).
//   - Edges are undirected; AddEdge(u,v) stores v in N(u) and u in N(v).
//   - Neighbor sets are ordered (ascending) and distinct; a repeated edge is a no-op.
//   - Self-loops are rejected with ErrLoopNotAllowed (staying put is modelled by the
//     search, not by the graph).
//   - Invariant: v ∈ N(u) ⟺ u ∈ N(v). FromAdjacency checks it for foreign input.
//
// Concurrency
//
//	All methods are safe for concurrent use. Mutators take the write lock,
//	queries take the read lock. Search code should not go through the lock on
//	every neighbor lookup: it takes one Adjacency() snapshot and reads plain
//	slices from then on.
//
// Complexity (n = |V|, m = |E|, d = degree)
//
//   - AddEdge:     O(log d)
//   - HasEdge:     O(log d)
//   - Neighbors:   O(d)
//   - Adjacency:   O(n + m) on the first call after a mutation, O(1) afterwards.
//
// Usage
//
//	g, _ := core.NewGraph(4)
//	_, _ = g.AddEdge(0, 1)
//	_, _ = g.AddEdge(1, 2)
//	adj := g.Adjacency() // [][]int{{1}, {0, 2}, {1}, {}}
package core
